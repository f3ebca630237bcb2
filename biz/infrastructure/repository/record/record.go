package record

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record 一次批改的留痕：送审内容与模型结果
type Record struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId     string             `bson:"user_id" json:"userId"`
	Category   string             `bson:"category" json:"category"`
	GradeLevel string             `bson:"grade_level" json:"gradeLevel"`
	Content    string             `bson:"content" json:"content"`
	Response   string             `bson:"response" json:"response"`
	Status     int                `bson:"status" json:"status"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
