package suite

import (
	"encoding/xml"
	"fmt"
	"os"

	"ngrun/internal/domain"
)

// Descriptor is the decoded form of a suite file.
type Descriptor struct {
	XMLName xml.Name `xml:"suite"`
	Name    string   `xml:"name,attr"`
	Verbose string   `xml:"verbose,attr"`
	Tests   []Test   `xml:"test"`
}

// Test is a <test> element of a suite.
type Test struct {
	Name    string  `xml:"name,attr"`
	Classes []Class `xml:"classes>class"`
}

// Class is a <class> element; Methods is nil for a whole-class selection.
type Class struct {
	Name    string   `xml:"name,attr"`
	Methods *Methods `xml:"methods"`
}

// Methods lists the included methods of a class.
type Methods struct {
	Includes []Include `xml:"include"`
}

// Include selects one method.
type Include struct {
	Name string `xml:"name,attr"`
}

// Parse decodes a suite document.
func Parse(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := xml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	return &d, nil
}

// Read decodes the suite file at path.
func Read(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Target returns the class and method selection of the first test's first class.
func (d *Descriptor) Target() (domain.RunTarget, error) {
	if len(d.Tests) == 0 || len(d.Tests[0].Classes) == 0 {
		return domain.RunTarget{}, fmt.Errorf("suite %q selects no class", d.Name)
	}
	class := d.Tests[0].Classes[0]
	target := domain.RunTarget{ClassName: class.Name}
	if class.Methods != nil {
		for _, inc := range class.Methods.Includes {
			target.Methods = append(target.Methods, inc.Name)
		}
	}
	return target, nil
}
