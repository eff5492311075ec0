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

// LoginResult is returned by POST /api/login.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// ActionResult is the generic envelope returned by create/update/delete
// endpoints.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Id      int    `json:"id,omitempty"`
}
