package cli

import "ngrun/internal/config"

// Flags holds command-line flags
type Flags struct {
	Project    string
	ConfigFile string
	Verbose    bool
	TestPath   string
	NameFilter string
	TestCases  bool
	Col        int
	Run        bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile: f.ConfigFile,
		Verbose:    f.Verbose,
		TestPath:   f.TestPath,
		NameFilter: f.NameFilter,
		TestCases:  f.TestCases,
		Col:        f.Col,
		Run:        f.Run,
	}
}
