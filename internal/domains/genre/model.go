package genre

import "go.mongodb.org/mongo-driver/bson/primitive"

// Genre is a catalog genre document.
type Genre struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// URL is the genre's canonical catalog path.
func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID.Hex()
}
