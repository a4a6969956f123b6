package models

type User struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	Position  string `bson:"position" json:"position"`
	TechLevel string `bson:"tech_level" json:"tech_level"`
	BizLevel  string `bson:"biz_level" json:"biz_level"`
}
