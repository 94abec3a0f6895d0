package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/pixel-phantoms/phantomboard/internal/app"
	"github.com/rs/xid"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

// BoltSnapshotStore keeps leaderboard history in boltdb.
//
// Every repository gets nested bucket inside root bucket. Snapshots are keyed by xid, so
// bucket order is recording order.
type BoltSnapshotStore struct {
	db         *bbolt.DB
	bucketName []byte
	keep       int
}

// StoreOption configures BoltSnapshotStore.
type StoreOption func(*BoltSnapshotStore)

// WithRetention makes Save drop oldest snapshots of a repository so that at most keep are left.
// Non positive keep disables retention.
func WithRetention(keep int) StoreOption {
	return func(s *BoltSnapshotStore) {
		s.keep = keep
	}
}

// NewBoltSnapshotStore creates new BoltSnapshotStore instance.
func NewBoltSnapshotStore(dbPath string, bucketName string, opts ...StoreOption) (*BoltSnapshotStore, error) {
	db, err := bbolt.Open(dbPath, 0666, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketName)); err != nil {
			return err
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating database bucket: %w", err)
	}

	s := &BoltSnapshotStore{
		db:         db,
		bucketName: []byte(bucketName),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Save stores leaderboard and returns snapshot id.
// With retention set, oldest snapshots beyond the limit are removed in the same transaction.
func (s *BoltSnapshotStore) Save(repo app.Repo, lb *app.Leaderboard) (string, error) {
	data, err := msgpack.Marshal(lb)
	if err != nil {
		return "", fmt.Errorf("encoding leaderboard: %w", err)
	}

	id := xid.New()
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.Bucket(s.bucketName).CreateBucketIfNotExists(repoKey(repo))
		if err != nil {
			return err
		}
		if err := b.Put([]byte(id.String()), data); err != nil {
			return err
		}
		if s.keep > 0 {
			_, err = pruneBucket(b, s.keep)
		}
		return err
	}); err != nil {
		return "", fmt.Errorf("writing to db: %w", err)
	}

	return id.String(), nil
}

// Latest returns most recently saved leaderboard. Returns app.ErrNoSnapshot if there's none.
func (s *BoltSnapshotStore) Latest(repo app.Repo) (*app.Leaderboard, error) {
	var data []byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName).Bucket(repoKey(repo))
		if b == nil {
			return nil
		}
		_, v := b.Cursor().Last()
		if v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("reading from db: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("%s: %w", repo, app.ErrNoSnapshot)
	}

	var lb app.Leaderboard
	if err := msgpack.Unmarshal(data, &lb); err != nil {
		return nil, fmt.Errorf("decoding leaderboard: %w", err)
	}

	return &lb, nil
}

// History returns up to limit snapshots, newest first. Non positive limit returns all.
func (s *BoltSnapshotStore) History(repo app.Repo, limit int) ([]app.SnapshotInfo, error) {
	infos := []app.SnapshotInfo{}
	if err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName).Bucket(repoKey(repo))
		if b == nil {
			return nil
		}

		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(infos) >= limit {
				break
			}

			info, err := snapshotInfo(k, v)
			if err != nil {
				return err
			}
			infos = append(infos, info)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("reading from db: %w", err)
	}

	return infos, nil
}

// Prune removes oldest snapshots so that at most keep are left. Returns number of removed snapshots.
func (s *BoltSnapshotStore) Prune(repo app.Repo, keep int) (int, error) {
	if keep < 0 {
		return 0, app.InvalidRequestError("keep must not be negative")
	}

	var removed int
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName).Bucket(repoKey(repo))
		if b == nil {
			return nil
		}

		n, err := pruneBucket(b, keep)
		removed = n
		return err
	}); err != nil {
		return 0, fmt.Errorf("pruning db: %w", err)
	}

	return removed, nil
}

// Close closes database.
func (s *BoltSnapshotStore) Close() error {
	return s.db.Close()
}

// pruneBucket removes oldest keys so that at most keep are left.
func pruneBucket(b *bbolt.Bucket, keep int) (int, error) {
	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}
	if len(keys) <= keep {
		return 0, nil
	}

	var removed int
	for _, k := range keys[:len(keys)-keep] {
		if err := b.Delete(k); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

func repoKey(repo app.Repo) []byte {
	return []byte(strings.ToLower(repo.String()))
}

func snapshotInfo(k, v []byte) (app.SnapshotInfo, error) {
	var lb app.Leaderboard
	if err := msgpack.Unmarshal(v, &lb); err != nil {
		return app.SnapshotInfo{}, fmt.Errorf("decoding snapshot %s: %w", k, err)
	}

	return app.SnapshotInfo{
		ID:           string(k),
		Repo:         lb.Repo.String(),
		LoadedAt:     lb.LoadedAt,
		Contributors: lb.Summary.Contributors,
		MergedPRs:    lb.Summary.MergedPRs,
		Points:       lb.Summary.Points,
	}, nil
}
