// Package storage persists kensho artifacts in a .kensho/ workspace
// directory: the analyzed plan, the rendered report, the connector config
// and the append-only audit log.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"

	"github.com/kensho-project/kensho/internal/domain"
	"github.com/kensho-project/kensho/internal/domain/plan"
)

const KenshoDir = ".kensho"
const PlanFile = "plan.json"
const ReportFile = "report.md"
const ConnectorsFile = "connectors.yaml"
const EventsFile = "events.jsonl"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

var _ domain.WorkspaceRepository = (*FilesystemRepository)(nil)

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// ResolvePath ensures the path is within the .kensho directory and prevents
// traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, KenshoDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, KenshoDir)
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .kensho directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, KenshoDir))
	return err == nil
}

func (r *FilesystemRepository) SavePlan(p *plan.Plan) error {
	path, err := r.ResolvePath(PlanFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadPlan() (*plan.Plan, error) {
	retryer := retry.New[*plan.Plan](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*plan.Plan, error) {
		path, err := r.ResolvePath(PlanFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read plan file: %w", err)
		}

		var p plan.Plan
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
		}

		return &p, nil
	})
}

func (r *FilesystemRepository) SaveReport(report string) error {
	path, err := r.ResolvePath(ReportFile)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(report), 0600)
}

func (r *FilesystemRepository) LoadReport() (string, error) {
	path, err := r.ResolvePath(ReportFile)
	if err != nil {
		return "", err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read report file: %w", err)
	}
	return string(data), nil
}

func (r *FilesystemRepository) RecordEvent(event domain.Event) error {
	path, err := r.ResolvePath(EventsFile)
	if err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	data = append(data, '\n')

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open events file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

func (r *FilesystemRepository) LoadEvents() ([]domain.Event, error) {
	path, err := r.ResolvePath(EventsFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Event{}, nil
		}
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	var events []domain.Event
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var e domain.Event
		if err := json.Unmarshal(line, &e); err != nil {
			continue // skip malformed lines
		}
		events = append(events, e)
	}

	return events, nil
}
