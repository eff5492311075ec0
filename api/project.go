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

type ProjectOwner struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type Project struct {
	Id          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	FileSize    int64           `json:"file_size,omitempty"`
	Approved    int             `json:"approved"`
	CreatedAt   string          `json:"created_at,omitempty"`
	UpdatedAt   string          `json:"updated_at,omitempty"`
	Owners      []*ProjectOwner `json:"owners,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

type ProjectListResult struct {
	Success bool       `json:"success"`
	Data    []*Project `json:"data"`
	Message string     `json:"message,omitempty"`
}
