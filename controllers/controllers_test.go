package controllers

import (
	"KinderShelf/models"
	"KinderShelf/repositories/mocks"
	"KinderShelf/services"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testParentUID = "ZEXF4HEyySaGUVUFzUifUsF6rLi2"
	testChildUID  = "OeLYNPOdTkVhnKihw8Pqns1Q6Ml1"
)

// Tuesday, January 9th 2024.
var tuesday = time.Date(2024, time.January, 9, 15, 0, 0, 0, time.UTC)

type testRepos struct {
	parents    *mocks.ParentRepository
	children   *mocks.ChildRepository
	screenTime *mocks.ScreenTimeRepository
}

func testChild() models.Child {
	return models.Child{ID: 2, FirebaseUID: testChildUID, ParentFirebaseUID: testParentUID, Name: "Aru"}
}

// setupRouter wires real services over mocked repositories and authenticates
// every request as uid/userType.
func setupRouter(uid, userType string) (*gin.Engine, testRepos) {
	gin.SetMode(gin.TestMode)

	repos := testRepos{
		parents:    new(mocks.ParentRepository),
		children:   new(mocks.ChildRepository),
		screenTime: new(mocks.ScreenTimeRepository),
	}
	children := services.NewChildService(repos.children, repos.parents, repos.screenTime)
	screenTime := services.NewScreenTimeService(repos.screenTime, repos.parents, nil, nil, time.UTC)
	screenTime.Now = func() time.Time { return tuesday }

	SetChildService(children)
	SetParentService(services.NewParentService(repos.parents, children))
	SetScreenTimeService(screenTime)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("firebase_uid", uid)
		c.Set("user_type", userType)
		c.Next()
	})

	r.GET("/children/:child_id", ReadChild)
	r.PUT("/children/:child_id", UpdateChild)
	r.DELETE("/children/:child_id", DeleteChild)
	r.GET("/children/:child_id/screen-time", GetScreenTimeSettings)
	r.PUT("/children/:child_id/screen-time", UpdateScreenTimeSettings)
	r.GET("/children/:child_id/screen-time/status", GetScreenTimeStatus)
	r.POST("/children/:child_id/usage", RecordUsage)
	r.GET("/children/:child_id/usage/weekly", GetWeeklyUsage)
	r.GET("/children/:child_id/usage/history", GetUsageHistory)
	r.GET("/parents/:firebase_uid", ReadParent)
	r.PUT("/parents/:firebase_uid", UpdateParent)
	r.DELETE("/parents/:firebase_uid", DeleteParent)
	r.POST("/parents/:firebase_uid/children", AddChild)
	r.GET("/parents/:firebase_uid/children", ListChildren)
	return r, repos
}

func perform(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the "data" field of a response into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}
