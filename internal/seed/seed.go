// Package seed loads the initial programme and sector catalog from YAML.
package seed

import (
	"fmt"
	"os"

	"github.com/linskybing/oasis/internal/domain/catalog"
	"gopkg.in/yaml.v2"
)

type File struct {
	Programs []catalog.ProgramInput `yaml:"programs"`
	Sectors  []catalog.SectorInput  `yaml:"sectors"`
}

// Seeder is satisfied by CatalogService.
type Seeder interface {
	Seed(programs []catalog.ProgramInput, sectors []catalog.SectorInput) error
}

func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}
	for i, p := range f.Programs {
		if p.Name == "" || p.Code == "" {
			return File{}, fmt.Errorf("program #%d: name and code are required", i+1)
		}
		if p.Type == "" {
			f.Programs[i].Type = catalog.ProgramTecnico
		}
	}
	for i, s := range f.Sectors {
		if s.Name == "" {
			return File{}, fmt.Errorf("sector #%d: name is required", i+1)
		}
	}
	return f, nil
}

// Load reads path and upserts its contents. An empty path is a no-op.
func Load(path string, s Seeder) (File, error) {
	if path == "" {
		return File{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, err
	}
	if err := s.Seed(f.Programs, f.Sectors); err != nil {
		return File{}, err
	}
	return f, nil
}
