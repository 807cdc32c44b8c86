// e2e_test.go
//
// Collaborative DDP profile service for schools and support teams
// Copyright (c) 2026 DDP Hub <info@ddphub.org>
//
// This file is part of ddphub-api.
// ddphub-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// ddphub-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/ddphub/ddphub-api/tests/helpers"
	_ "github.com/go-sql-driver/mysql"
)

// TestE2EWithFullStack tests the entire service stack through HTTP
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	baseURL := tc.BaseURL(t)

	// Wait a bit for everything to stabilize
	time.Sleep(5 * time.Second)

	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, baseURL)
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		testSwaggerUI(t, baseURL)
	})

	t.Run("HealthEndpoint", func(t *testing.T) {
		testHealthEndpoint(t, baseURL)
	})

	t.Run("UnauthenticatedAccess", func(t *testing.T) {
		testUnauthenticatedAccess(t, baseURL)
	})

	t.Run("ProfileJourney", func(t *testing.T) {
		testProfileJourney(t, baseURL)
	})
}

func testPrometheusMetrics(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	bodyStr := string(body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for metrics, got %d. Body: %s", resp.StatusCode, bodyStr)
	}

	t.Logf("Metrics endpoint working, found %d bytes of metrics", len(bodyStr))
}

func testSwaggerUI(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/swagger/index.html")
	if err != nil {
		t.Fatalf("Failed to get Swagger UI: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for Swagger UI, got %d", resp.StatusCode)
	}
}

func testHealthEndpoint(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/health")
	if err != nil {
		t.Fatalf("Failed to get health: %v", err)
	}

	var result struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	helpers.ParseJSON(t, resp, &result)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for health, got %d", resp.StatusCode)
	}
	if result.Status != "healthy" || result.Database != "ok" {
		t.Errorf("Health check failed: %+v", result)
	}
}

func testUnauthenticatedAccess(t *testing.T, baseURL string) {
	// Profile routes require a bearer token
	resp, err := http.Get(baseURL + "/api/profiles")
	if err != nil {
		t.Fatalf("Failed to access profiles: %v", err)
	}
	helpers.AssertErrorMessage(t, resp, http.StatusUnauthorized, "No token, authorization denied.")

	// Unknown routes return the JSON 404 envelope
	resp, err = http.Get(baseURL + "/api/nope")
	if err != nil {
		t.Fatalf("Failed to access unknown route: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
	var envelope map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Errorf("Response is not valid JSON: %v", err)
	}
}

// testProfileJourney walks the full collaboration story: a lead professional
// registers, creates a profile, edits sections, invites a parent, and the
// parent reads the shared profile.
func testProfileJourney(t *testing.T, baseURL string) {
	client := &http.Client{}
	password := helpers.GeneratePassword()

	leadToken := helpers.AcquireAccount(t, baseURL, "Lena Lead", "lena.lead@e2e.example.org", password, "lead_professional")
	parentToken := helpers.AcquireAccount(t, baseURL, "Paul Parent", "paul.parent@e2e.example.org", password, "parent")

	// Create a profile
	body, _ := json.Marshal(map[string]string{"learnerName": "Noah"})
	resp, err := client.Do(helpers.AuthorizedRequest(t, "POST", baseURL+"/api/profiles", leadToken, body))
	if err != nil {
		t.Fatalf("Create profile failed: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusCreated)

	var profile struct {
		ID       string `json:"id"`
		Sections map[string]struct {
			Title   string          `json:"title"`
			Content json.RawMessage `json:"content"`
		} `json:"sections"`
	}
	helpers.ParseJSON(t, resp, &profile)
	if len(profile.Sections) != 12 {
		t.Fatalf("Expected 12 sections, got %d", len(profile.Sections))
	}

	// Parent cannot see the profile yet
	resp, err = client.Do(helpers.AuthorizedRequest(t, "GET", baseURL+"/api/profiles/"+profile.ID, parentToken, nil))
	if err != nil {
		t.Fatalf("Parent read failed: %v", err)
	}
	helpers.AssertErrorMessage(t, resp, http.StatusForbidden, "Profile not found or access denied.")

	// Lead edits a list section from editor text
	body, _ = json.Marshal(map[string]string{"newContent": "Good at maths\nLoves drawing"})
	resp, err = client.Do(helpers.AuthorizedRequest(t, "PUT", baseURL+"/api/profiles/"+profile.ID+"/section/3", leadToken, body))
	if err != nil {
		t.Fatalf("Update section failed: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)

	var section struct {
		Title   string   `json:"title"`
		Content []string `json:"content"`
	}
	helpers.ParseJSON(t, resp, &section)
	if len(section.Content) != 2 || section.Content[0] != "Good at maths" {
		t.Errorf("Unexpected section content: %v", section.Content)
	}

	// Invite the parent
	body, _ = json.Marshal(map[string]string{"email": "paul.parent@e2e.example.org", "role": "viewer"})
	resp, err = client.Do(helpers.AuthorizedRequest(t, "POST", baseURL+"/api/profiles/"+profile.ID+"/invite", leadToken, body))
	if err != nil {
		t.Fatalf("Invite failed: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)

	// Duplicate invite is rejected
	resp, err = client.Do(helpers.AuthorizedRequest(t, "POST", baseURL+"/api/profiles/"+profile.ID+"/invite", leadToken, body))
	if err != nil {
		t.Fatalf("Duplicate invite failed: %v", err)
	}
	helpers.AssertErrorMessage(t, resp, http.StatusBadRequest, "This user already has access to the profile.")

	// Parent can now read the profile and sees the edited section
	resp, err = client.Do(helpers.AuthorizedRequest(t, "GET", baseURL+"/api/profiles/"+profile.ID, parentToken, nil))
	if err != nil {
		t.Fatalf("Parent read failed: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)
	helpers.ParseJSON(t, resp, &profile)

	var strengths []string
	if err := json.Unmarshal(profile.Sections["3"].Content, &strengths); err != nil {
		t.Fatalf("Failed to decode strengths: %v", err)
	}
	if len(strengths) != 2 || strengths[1] != "Loves drawing" {
		t.Errorf("Unexpected strengths after sharing: %v", strengths)
	}

	// Parent is not a lead professional and cannot create profiles
	body, _ = json.Marshal(map[string]string{"learnerName": "Mia"})
	resp, err = client.Do(helpers.AuthorizedRequest(t, "POST", baseURL+"/api/profiles", parentToken, body))
	if err != nil {
		t.Fatalf("Parent create failed: %v", err)
	}
	helpers.AssertErrorMessage(t, resp, http.StatusForbidden, "Forbidden: This action requires Lead Professional privileges.")
}
