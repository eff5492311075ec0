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

package cmd

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
)

func TestUsersCommand(t *testing.T) {
	client := resty.New()

	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "/api/users",
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"success": true,
				"data": []map[string]interface{}{
					{"id": 1, "username": "alice", "email": "alice@example.com", "admin": 1},
					{"id": 2, "username": "bob", "email": "bob@example.com"},
				},
			})
		},
	)

	users, err := runUsersCmd(client)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 1, users[0].Admin)
	assert.Equal(t, "bob", users[1].Username)
}

func TestUsersDeleteCommand(t *testing.T) {

	client := resty.New()

	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	var tests = []struct {
		statusCode  int
		response    map[string]interface{}
		expectedErr error
	}{
		{200, map[string]interface{}{"success": true, "message": "User deleted"}, nil},
		{403, map[string]interface{}{"success": false, "message": "Admin access required"},
			fmt.Errorf("Admin access required")},
		{404, map[string]interface{}{"success": false, "message": "User not found"},
			fmt.Errorf("User not found")},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.statusCode), func(t *testing.T) {

			httpmock.Reset()
			httpmock.RegisterResponder("DELETE", `=~^/api/users/(\d+)$`,
				func(req *http.Request) (*http.Response, error) {
					id, err := httpmock.GetSubmatch(req, 1)
					assert.NoError(t, err)
					assert.Equal(t, "17", id)

					return httpmock.NewJsonResponse(tt.statusCode, tt.response)
				},
			)

			var stdin bytes.Buffer
			stdin.Write([]byte("y\n"))

			err := runUsersDeleteCmd(client, "17", &stdin)

			assert.Equal(t, 1, httpmock.GetTotalCallCount())
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}
