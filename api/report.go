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

// Report statuses accepted by PUT /api/reports/{id}.
const (
	ReportStatusPending   = "pending"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

type Report struct {
	Id                int    `json:"id"`
	ReporterId        int    `json:"reporter_id"`
	ReportedUserId    int    `json:"reported_user_id,omitempty"`
	ReportedProjectId int    `json:"reported_project_id,omitempty"`
	Reason            string `json:"reason"`
	Status            string `json:"status"`
	AdminNotes        string `json:"admin_notes,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
}

type ReportListResult struct {
	Success bool      `json:"success"`
	Data    []*Report `json:"data"`
	Message string    `json:"message,omitempty"`
}
