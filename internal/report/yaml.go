package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"fspgen/internal/bench"
)

type boundsDoc struct {
	Taillard      int64 `yaml:"taillard"`
	Proportionate int64 `yaml:"proportionate"`
	Best          int64 `yaml:"best"`
}

type instanceDoc struct {
	Strategy string `yaml:"strategy"`
	Jobs     int    `yaml:"jobs"`
	Machines int    `yaml:"machines"`
	Seed     int64  `yaml:"seed"`

	// Durations[m] holds machine m's durations, one per job.
	Durations   [][]int   `yaml:"durations,flow"`
	LowerBounds boundsDoc `yaml:"lowerBounds"`
}

// WriteYAML writes the instance and its bounds as one YAML document.
func WriteYAML(w io.Writer, res bench.Result) error {
	doc := instanceDoc{
		Strategy:  string(res.Case.Config.Strategy),
		Jobs:      res.Instance.Jobs,
		Machines:  res.Instance.Machines,
		Seed:      res.Case.Seed,
		Durations: res.Instance.Durations,
		LowerBounds: boundsDoc{
			Taillard:      res.Bounds.Taillard,
			Proportionate: res.Bounds.Proportionate,
			Best:          res.Bounds.Best,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
