package record

import (
	"context"
	"time"

	"essay-grader/biz/infrastructure/config"
	"essay-grader/biz/infrastructure/consts"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixRecordCacheKey = "cache:grading_record"
	CollectionName       = "grading_record"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, record *Record) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
		record.CreateTime = time.Now()
		record.UpdateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, record)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var r Record
	err = m.conn.FindOneNoCache(ctx, &r, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &r, nil
}

// FindManyByUser 按用户分页查询批改记录，按创建时间倒序
func (m *MongoMapper) FindManyByUser(ctx context.Context, userId string, page, pageSize int64) ([]*Record, int64, error) {
	var records []*Record
	filter := bson.M{consts.UserID: userId}

	// 获取总数
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// 分页查询
	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &records, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
