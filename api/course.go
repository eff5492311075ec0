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

type Topic struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type Course struct {
	Id          int      `json:"id"`
	Code        string   `json:"code,omitempty"`
	Name        string   `json:"name"`
	Semester    string   `json:"semester,omitempty"`
	Term        string   `json:"term,omitempty"`
	Description string   `json:"description,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	Topics      []*Topic `json:"topics,omitempty"`
}

type CourseListResult struct {
	Success bool      `json:"success"`
	Data    []*Course `json:"data"`
	Message string    `json:"message,omitempty"`
}

type TopicListResult struct {
	Success bool     `json:"success"`
	Data    []*Topic `json:"data"`
	Message string   `json:"message,omitempty"`
}
