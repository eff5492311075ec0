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

type Notification struct {
	Id        int    `json:"id"`
	UserId    int    `json:"user_id"`
	ProjectId int    `json:"project_id,omitempty"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Read      int    `json:"read"`
	CreatedAt string `json:"created_at,omitempty"`
}

type NotificationListResult struct {
	Success bool            `json:"success"`
	Data    []*Notification `json:"data"`
	Message string          `json:"message,omitempty"`
}
