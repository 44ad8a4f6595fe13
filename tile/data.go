package tile

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tiledata.yaml
var defaultData []byte

type StaticInfo struct {
	ID     uint16 `yaml:"id"`
	Name   string `yaml:"name"`
	Height uint8  `yaml:"height"`
}

type dataFile struct {
	Statics []StaticInfo `yaml:"statics"`
}

// Data is the per-id static metadata table.
type Data struct {
	statics map[uint16]StaticInfo
	ids     []uint16
}

func ParseData(b []byte) (*Data, error) {
	var doc dataFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("tile: unmarshal tile data: %w", err)
	}
	d := &Data{statics: make(map[uint16]StaticInfo, len(doc.Statics))}
	for _, s := range doc.Statics {
		if _, dup := d.statics[s.ID]; dup {
			return nil, fmt.Errorf("tile: duplicate static id %d", s.ID)
		}
		d.statics[s.ID] = s
		d.ids = append(d.ids, s.ID)
	}
	return d, nil
}

// LoadData reads tile data from path, falling back to the embedded table
// when path is empty or missing.
func LoadData(path string) (*Data, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			return ParseData(b)
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("tile: read %s: %w", path, err)
		}
	}
	return ParseData(defaultData)
}

// StaticHeight returns the registered height for id, or 0 if unknown.
func (d *Data) StaticHeight(id uint16) uint8 {
	if d == nil {
		return 0
	}
	return d.statics[id].Height
}

func (d *Data) Static(id uint16) (StaticInfo, bool) {
	if d == nil {
		return StaticInfo{}, false
	}
	s, ok := d.statics[id]
	return s, ok
}

// IDs lists static ids in file order.
func (d *Data) IDs() []uint16 {
	if d == nil {
		return nil
	}
	return append([]uint16(nil), d.ids...)
}
