// file: internal/database/mongo_store.go
// version: 1.0.0
// guid: 4f8e2a6c-1b3d-4e7f-9a5c-2d6b8e0f3a71

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoOptions configures the MongoDB backend.
type MongoOptions struct {
	URI                 string
	Database            string
	UsersCollection     string
	WordsCollection     string
	UserWordsCollection string
	ConnectTimeout      time.Duration
}

func (o MongoOptions) withDefaults() MongoOptions {
	if o.Database == "" {
		o.Database = "wordbook"
	}
	if o.UsersCollection == "" {
		o.UsersCollection = "users"
	}
	if o.WordsCollection == "" {
		o.WordsCollection = "words"
	}
	if o.UserWordsCollection == "" {
		o.UserWordsCollection = "user_words"
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = 10 * time.Second
	}
	return o
}

// MongoStore implements the Store interface using MongoDB. Uniqueness comes
// from unique indexes; the popularity counter is moved with $inc.
type MongoStore struct {
	client    *mongo.Client
	users     *mongo.Collection
	words     *mongo.Collection
	userWords *mongo.Collection
}

// NewMongoStore connects, pings and ensures the indexes exist.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	opts = opts.withDefaults()
	if opts.URI == "" {
		return nil, fmt.Errorf("mongo uri is required")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(opts.URI).SetConnectTimeout(opts.ConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(opts.Database)
	store := &MongoStore{
		client:    client,
		users:     db.Collection(opts.UsersCollection),
		words:     db.Collection(opts.WordsCollection),
		userWords: db.Collection(opts.UserWordsCollection),
	}
	if err := store.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	return store, nil
}

func (m *MongoStore) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{m.users, mongo.IndexModel{Keys: bson.D{{Key: "username_key", Value: 1}}, Options: unique}},
		{m.words, mongo.IndexModel{Keys: bson.D{{Key: "fingerprint", Value: 1}}, Options: unique}},
		{m.words, mongo.IndexModel{Keys: bson.D{{Key: "spelling_key", Value: 1}}}},
		{m.userWords, mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "word_id", Value: 1}}, Options: unique}},
		{m.userWords, mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}}},
	}
	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil {
			return err
		}
	}
	return nil
}

// Close disconnects the client.
func (m *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

// Users

func (m *MongoStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	created := *user
	var err error
	if created.ID == "" {
		if created.ID, err = newULID(); err != nil {
			return nil, err
		}
	}
	created.UsernameKey = strings.ToLower(created.Username)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	if _, err := m.users.InsertOne(ctx, &created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &created, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *MongoStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	return findOne[User](ctx, m.users, bson.M{"_id": id})
}

func (m *MongoStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return findOne[User](ctx, m.users, bson.M{"username_key": strings.ToLower(username)})
}

func (m *MongoStore) CountUsers(ctx context.Context) (int, error) {
	n, err := m.users.CountDocuments(ctx, bson.D{})
	return int(n), err
}

// Words

// UpsertWord increments by fingerprint with upsert. Two concurrent inserts of
// a new fingerprint can both miss and one fails the unique index; the loser
// retries once and lands on the winner's document.
func (m *MongoStore) UpsertWord(ctx context.Context, word *Word) (*Word, bool, error) {
	w, created, err := m.upsertWordOnce(ctx, word)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		w, created, err = m.upsertWordOnce(ctx, word)
	}
	return w, created, err
}

func (m *MongoStore) upsertWordOnce(ctx context.Context, word *Word) (*Word, bool, error) {
	id, err := newULID()
	if err != nil {
		return nil, false, err
	}
	now := time.Now().UTC()

	filter := bson.M{"fingerprint": word.Fingerprint}
	update := bson.M{
		"$inc": bson.M{"popularity": 1},
		"$set": bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"_id":                          id,
			"spelling":                     word.Spelling,
			"spelling_key":                 word.SpellingKey,
			"meaning":                      word.Meaning,
			"example_sentence":             word.ExampleSentence,
			"example_sentence_translation": word.ExampleSentenceTranslation,
			"created_at":                   now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var w Word
	if err := m.words.FindOneAndUpdate(ctx, filter, update, opts).Decode(&w); err != nil {
		return nil, false, err
	}
	return &w, w.ID == id, nil
}

func (m *MongoStore) GetWordByID(ctx context.Context, id string) (*Word, error) {
	return findOne[Word](ctx, m.words, bson.M{"_id": id})
}

func (m *MongoStore) GetWordByFingerprint(ctx context.Context, fingerprint string) (*Word, error) {
	return findOne[Word](ctx, m.words, bson.M{"fingerprint": fingerprint})
}

func (m *MongoStore) findWords(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) ([]Word, error) {
	cur, err := m.words.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	words := []Word{}
	if err := cur.All(ctx, &words); err != nil {
		return nil, err
	}
	return words, nil
}

func (m *MongoStore) GetWordsByIDs(ctx context.Context, ids []string) ([]Word, error) {
	if len(ids) == 0 {
		return []Word{}, nil
	}
	return m.findWords(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (m *MongoStore) FindWordsBySubsequence(ctx context.Context, q SubsequenceQuery, limit int) ([]Word, error) {
	if limit <= 0 {
		return []Word{}, nil
	}
	filter := bson.M{"spelling_key": bson.Regex{Pattern: q.Regex, Options: "i"}}
	return m.findWords(ctx, filter, options.Find().SetLimit(int64(limit)))
}

func (m *MongoStore) DecrementWordPopularity(ctx context.Context, id string) error {
	return m.guardedDecrement(ctx, id)
}

// guardedDecrement only matches documents whose popularity is positive.
func (m *MongoStore) guardedDecrement(ctx context.Context, id string) error {
	res, err := m.words.UpdateOne(ctx,
		bson.M{"_id": id, "popularity": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"popularity": -1}, "$set": bson.M{"updated_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}
	w, err := m.GetWordByID(ctx, id)
	if err != nil {
		return err
	}
	if w == nil {
		return ErrNotFound
	}
	return ErrPopularityUnderflow
}

func (m *MongoStore) SetWordPopularity(ctx context.Context, id string, popularity int64) error {
	res, err := m.words.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"popularity": popularity, "updated_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStore) ListWords(ctx context.Context, limit, offset int) ([]Word, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return m.findWords(ctx, bson.D{}, opts)
}

func (m *MongoStore) CountWords(ctx context.Context) (int, error) {
	n, err := m.words.CountDocuments(ctx, bson.D{})
	return int(n), err
}

// User words

func (m *MongoStore) CreateUserWord(ctx context.Context, uw *UserWord) (*UserWord, error) {
	created := *uw
	var err error
	if created.ID, err = newULID(); err != nil {
		return nil, err
	}
	created.CreatedAt = time.Now().UTC()
	if _, err := m.userWords.InsertOne(ctx, &created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &created, nil
}

func (m *MongoStore) GetUserWord(ctx context.Context, userID, wordID string) (*UserWord, error) {
	return findOne[UserWord](ctx, m.userWords, bson.M{"user_id": userID, "word_id": wordID})
}

func (m *MongoStore) GetUserWordByID(ctx context.Context, id string) (*UserWord, error) {
	return findOne[UserWord](ctx, m.userWords, bson.M{"_id": id})
}

func (m *MongoStore) ListUserWords(ctx context.Context, userID string) ([]UserWord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := m.userWords.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	links := []UserWord{}
	if err := cur.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (m *MongoStore) CountUserWordsByWord(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$word_id"},
			{Key: "n", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := m.userWords.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		WordID string `bson:"_id"`
		N      int64  `bson:"n"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.WordID] = r.N
	}
	return counts, nil
}

// RemoveUserWord runs without a multi-document transaction so that it works
// on standalone servers: guarded decrement first, then the delete, and a
// compensating increment if the delete does not go through.
func (m *MongoStore) RemoveUserWord(ctx context.Context, uw *UserWord) error {
	if err := m.guardedDecrement(ctx, uw.WordID); err != nil {
		return err
	}

	res, err := m.userWords.DeleteOne(ctx, bson.M{"_id": uw.ID})
	if err == nil && res.DeletedCount == 1 {
		return nil
	}
	if err == nil {
		err = ErrNotFound
	}

	_, cerr := m.words.UpdateOne(context.WithoutCancel(ctx), bson.M{"_id": uw.WordID},
		bson.M{"$inc": bson.M{"popularity": 1}})
	if cerr != nil {
		return fmt.Errorf("%w (compensation failed: %v)", err, cerr)
	}
	return err
}
