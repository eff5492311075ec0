// Copyright 2024 ProjHub Team <dev@projhub.dev>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// CatalogCourse is one course entry in a YAML catalog manifest used to seed
// a platform instance.
type CatalogCourse struct {
	Code        string   `yaml:"code" json:"code"`
	Name        string   `yaml:"name" json:"name"`
	Semester    string   `yaml:"semester,omitempty" json:"semester,omitempty"`
	Term        string   `yaml:"term,omitempty" json:"term,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Topics      []string `yaml:"topics,omitempty" json:"topics,omitempty"`
}

type CourseCatalog struct {
	Courses []*CatalogCourse `yaml:"courses" json:"courses"`
}

// LoadCourseCatalog reads and validates a catalog manifest. Every course
// needs a code and a name; topics are optional.
func LoadCourseCatalog(fs afero.Fs, filename string) (*CourseCatalog, error) {
	yamlFile, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}

	catalog := CourseCatalog{}
	if err := yaml.Unmarshal(yamlFile, &catalog); err != nil {
		return nil, err
	}

	if len(catalog.Courses) == 0 {
		return nil, fmt.Errorf("%s contains no courses", filename)
	}

	for i, course := range catalog.Courses {
		if course.Code == "" || course.Name == "" {
			return nil, fmt.Errorf("course #%d must define both a code and a name", i+1)
		}
	}

	return &catalog, nil
}
