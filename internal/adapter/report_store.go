package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const (
	reportFileName    = "report.yaml"
	shardDirPrefix    = "shard_"
	reportFileMode    = 0o600
	reportDirFileMode = 0o750
)

// ReportStore persists run reports under a reports directory.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.RunReport) error
	LoadReport(ctx context.Context, dir m.Path) (m.RunReport, error)
	// ShardDirs lists the shard_* subdirectories of dir that hold a report.
	ShardDirs(ctx context.Context, dir m.Path) ([]m.Path, error)
}

// YAMLReportStore stores one report.yaml per directory.
type YAMLReportStore struct{}

// NewReportStore constructs the YAML-backed ReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// ShardDir returns the directory a shard writes its report into.
func ShardDir(dir m.Path, shardIndex int) m.Path {
	return m.Path(filepath.Join(string(dir), fmt.Sprintf("%s%d", shardDirPrefix, shardIndex)))
}

// SaveReport writes report to dir/report.yaml.
func (s *YAMLReportStore) SaveReport(ctx context.Context, dir m.Path, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), reportDirFileMode); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(path, buf.Bytes(), reportFileMode); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport reads dir/report.yaml.
func (s *YAMLReportStore) LoadReport(ctx context.Context, dir m.Path) (m.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return m.RunReport{}, err
	}

	// #nosec G304 - dir is the configured reports directory
	data, err := os.ReadFile(filepath.Join(string(dir), reportFileName))
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("parse report: %w", err)
	}

	return report, nil
}

// ShardDirs lists shard directories in shard index order.
func (s *YAMLReportStore) ShardDirs(ctx context.Context, dir m.Path) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("list reports dir: %w", err)
	}

	type shard struct {
		index int
		path  m.Path
	}

	var shards []shard

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), shardDirPrefix) {
			continue
		}

		var index int
		if _, err := fmt.Sscanf(entry.Name(), shardDirPrefix+"%d", &index); err != nil {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())
		if _, err := os.Stat(filepath.Join(path, reportFileName)); err != nil {
			continue
		}

		shards = append(shards, shard{index: index, path: m.Path(path)})
	}

	sort.Slice(shards, func(i, j int) bool { return shards[i].index < shards[j].index })

	dirs := make([]m.Path, 0, len(shards))
	for _, s := range shards {
		dirs = append(dirs, s.path)
	}

	return dirs, nil
}
