package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"wordlens/internal/domain"
)

var (
	bucketReports = []byte("reports")
	bucketTexts   = []byte("texts")
	bucketHashes  = []byte("hashes")
	bucketStats   = []byte("stats")
)

var ErrReportNotFound = domain.ErrReportNotFound

type BoltStore struct {
	db    *bbolt.DB
	codec *Codec
}

// NewBoltStore opens the report database at path. With compress set, stored
// source texts are zstd-compressed.
func NewBoltStore(path string, compress bool) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketReports, bucketTexts, bucketHashes, bucketStats}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	codec, err := NewCodec(compress)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, codec: codec}, nil
}

func (s *BoltStore) DB() *bbolt.DB {
	return s.db
}

type reportMeta struct {
	Path      string        `json:"path"`
	Hash      string        `json:"hash"`
	CreatedAt int64         `json:"created_at"`
	Language  string        `json:"language"`
	Report    domain.Report `json:"report"`
}

func (s *BoltStore) PutReport(r domain.StoredReport) error {
	if r.ID == "" {
		return fmt.Errorf("report id is required")
	}

	// tokens are recomputed from the text on demand
	r.Report.Result.Tokens = nil

	meta := reportMeta{
		Path:      r.Path,
		Hash:      r.Hash,
		CreatedAt: r.CreatedAt.UnixNano(),
		Language:  r.Language,
		Report:    r.Report,
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	blob, err := s.codec.Encode([]byte(r.Text))
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketReports).Put([]byte(r.ID), data); err != nil {
			return err
		}
		if err := tx.Bucket(bucketTexts).Put([]byte(r.ID), blob); err != nil {
			return err
		}
		if r.Hash != "" {
			return tx.Bucket(bucketHashes).Put([]byte(r.Hash), []byte(r.ID))
		}
		return nil
	})
}

func (s *BoltStore) GetReport(id string) (domain.StoredReport, error) {
	var report domain.StoredReport
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		report, err = s.readReport(tx, []byte(id))
		return err
	})
	return report, err
}

func (s *BoltStore) readReport(tx *bbolt.Tx, id []byte) (domain.StoredReport, error) {
	data := tx.Bucket(bucketReports).Get(id)
	if data == nil {
		return domain.StoredReport{}, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	var meta reportMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return domain.StoredReport{}, err
	}

	var text string
	if blob := tx.Bucket(bucketTexts).Get(id); blob != nil {
		raw, err := s.codec.Decode(blob)
		if err != nil {
			return domain.StoredReport{}, err
		}
		text = string(raw)
	}

	return domain.StoredReport{
		ID:        string(id),
		Path:      meta.Path,
		Hash:      meta.Hash,
		CreatedAt: time.Unix(0, meta.CreatedAt),
		Language:  meta.Language,
		Report:    meta.Report,
		Text:      text,
	}, nil
}

func (s *BoltStore) FindByHash(hash string) (domain.StoredReport, bool, error) {
	var report domain.StoredReport
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucketHashes).Get([]byte(hash))
		if id == nil {
			return nil
		}
		var err error
		report, err = s.readReport(tx, id)
		if errors.Is(err, ErrReportNotFound) {
			return nil
		}
		found = err == nil
		return err
	})
	return report, found, err
}

// ListReports returns every report, oldest first, without source text.
func (s *BoltStore) ListReports() ([]domain.StoredReport, error) {
	var reports []domain.StoredReport
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketReports).ForEach(func(k, v []byte) error {
			var meta reportMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			reports = append(reports, domain.StoredReport{
				ID:        string(k),
				Path:      meta.Path,
				Hash:      meta.Hash,
				CreatedAt: time.Unix(0, meta.CreatedAt),
				Language:  meta.Language,
				Report:    meta.Report,
			})
			return nil
		})
	})
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})
	return reports, err
}

func (s *BoltStore) DeleteReport(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketReports).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrReportNotFound, id)
		}
		var meta reportMeta
		if err := json.Unmarshal(data, &meta); err == nil && meta.Hash != "" {
			hashes := tx.Bucket(bucketHashes)
			if string(hashes.Get([]byte(meta.Hash))) == id {
				if err := hashes.Delete([]byte(meta.Hash)); err != nil {
					return err
				}
			}
		}
		if err := tx.Bucket(bucketTexts).Delete([]byte(id)); err != nil {
			return err
		}
		return tx.Bucket(bucketReports).Delete([]byte(id))
	})
}

func (s *BoltStore) Close() error {
	s.codec.Close()
	return s.db.Close()
}
