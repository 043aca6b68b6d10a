package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailored-agentic-units/tenderaudit/tender"
)

type fileStore struct {
	root string
}

// NewFileStore creates a Store backed by the filesystem. Each tender maps
// to a single <tenderID>.json document under root.
func NewFileStore(root string) Store {
	return &fileStore{root: root}
}

func (s *fileStore) path(tenderID string) string {
	return filepath.Join(s.root, tenderID+".json")
}

func (s *fileStore) Save(_ context.Context, tenderID string, rep *tender.TenderReport) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, tenderID, err)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, tenderID, err)
	}

	// Write via tmp+rename so readers never observe a partial report.
	tmp, err := os.CreateTemp(s.root, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, tenderID, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, tenderID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, tenderID, err)
	}

	if err := os.Rename(tmpName, s.path(tenderID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, tenderID, err)
	}

	return nil
}

func (s *fileStore) Load(_ context.Context, tenderID string) (*tender.TenderReport, error) {
	data, err := os.ReadFile(s.path(tenderID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, tenderID)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, tenderID, err)
	}

	var rep tender.TenderReport
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, tenderID, err)
	}

	return &rep, nil
}

func (s *fileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}

	return ids, nil
}

func (s *fileStore) Delete(_ context.Context, tenderID string) error {
	if err := os.Remove(s.path(tenderID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete failed: %s: %w", tenderID, err)
	}
	return nil
}
