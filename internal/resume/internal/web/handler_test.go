// Copyright 2023 resumatch
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/resumatch/resumatch/internal/resume/internal/domain"
	resumemocks "github.com/resumatch/resumatch/internal/resume/mocks"
	"github.com/resumatch/resumatch/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*gin.Engine, *resumemocks.MockService) {
	ctrl := gomock.NewController(t)
	svc := resumemocks.NewMockService(ctrl)
	gin.SetMode(gin.TestMode)
	server := gin.New()
	NewHandler(svc).PublicRoutes(server)
	return server, svc
}

func newAnalyzeRequest(t *testing.T, path string) *http.Request {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("John Doe\nSoftware Engineer"))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("job_description", "Backend engineer"))
	require.NoError(t, w.Close())
	req, err := http.NewRequest(http.MethodPost, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandler_Analyze(t *testing.T) {
	server, svc := newTestServer(t)
	svc.EXPECT().Analyze(gomock.Any(), "resume.txt", gomock.Any(), "Backend engineer").
		Return(domain.Report{
			Tid:          "tid-1",
			Filename:     "resume.txt",
			OverallScore: 94.4039,
			Categories: domain.CategoryScores{
				Skills: 83.3333,
			},
			Classification: "Good Fit",
		}, nil)

	recorder := test.NewJSONResponseRecorder[ReportVO]()
	server.ServeHTTP(recorder, newAnalyzeRequest(t, "/resume/analyze"))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, "tid-1", res.Data.Tid)
	// 展示层保留一位小数
	assert.Equal(t, 94.4, res.Data.OverallScore)
	assert.Equal(t, 83.3, res.Data.Categories.Skills)
}

func TestHandler_AnalyzeAsync(t *testing.T) {
	server, svc := newTestServer(t)
	svc.EXPECT().AnalyzeAsync(gomock.Any(), "resume.txt", gomock.Any(), "Backend engineer").
		Return("tid-9", nil)

	recorder := test.NewJSONResponseRecorder[AsyncTaskVO]()
	server.ServeHTTP(recorder, newAnalyzeRequest(t, "/resume/analyze/async"))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "tid-9", recorder.MustScan().Data.Tid)
}

func TestHandler_Report(t *testing.T) {
	t.Run("找得到", func(t *testing.T) {
		server, svc := newTestServer(t)
		svc.EXPECT().Report(gomock.Any(), "tid-1").Return(domain.Report{Tid: "tid-1"}, nil)
		req, err := http.NewRequest(http.MethodGet, "/resume/report/tid-1", nil)
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[ReportVO]()
		server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "tid-1", recorder.MustScan().Data.Tid)
	})

	t.Run("找不到", func(t *testing.T) {
		server, svc := newTestServer(t)
		svc.EXPECT().Report(gomock.Any(), "missing").
			Return(domain.Report{}, gorm.ErrRecordNotFound)
		req, err := http.NewRequest(http.MethodGet, "/resume/report/missing", nil)
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[ReportVO]()
		server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		res := recorder.MustScan()
		assert.Equal(t, reportNotFoundResult.Code, res.Code)
	})
}

func TestHandler_List(t *testing.T) {
	server, svc := newTestServer(t)
	svc.EXPECT().List(gomock.Any(), 0, 20).
		Return([]domain.Report{{Tid: "a"}, {Tid: "b"}}, int64(2), nil)

	var buf bytes.Buffer
	buf.WriteString(`{"offset":0}`)
	req, err := http.NewRequest(http.MethodPost, "/resume/list", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := test.NewJSONResponseRecorder[ReportListVO]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, int64(2), res.Data.Total)
	assert.Len(t, res.Data.Reports, 2)
}
