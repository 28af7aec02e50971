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

//go:build e2e

package integration

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/resumatch/resumatch/internal/jd"
	"github.com/resumatch/resumatch/internal/parser"
	"github.com/resumatch/resumatch/internal/pkg/snowflake"
	"github.com/resumatch/resumatch/internal/resume"
	"github.com/resumatch/resumatch/internal/resume/internal/web"
	"github.com/resumatch/resumatch/internal/scoring"
	"github.com/resumatch/resumatch/internal/test"
	testioc "github.com/resumatch/resumatch/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const sampleResume = `John Doe
Senior Software Engineer
john.doe@example.com | +1 (555) 123-4567

SKILLS
Python, Go, Docker, Kubernetes

EXPERIENCE
Acme Corp. — Senior Software Engineer
Jan 2020 - Present
- Built the billing platform

EDUCATION
Stanford University
B.S. in Computer Science
`

const sampleJD = `Backend engineer. Required: Python, Go, Docker.`

type AnalysisHandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *AnalysisHandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	ec := testioc.InitCache()
	q := testioc.InitMQ()
	idGen, err := snowflake.NewGenerator(1)
	require.NoError(s.T(), err)

	parserModule := parser.InitModule()
	scoringModule := scoring.InitModule(parserModule, nil)
	jdModule := jd.InitModule(s.db, ec)
	module, err := resume.InitModule(s.db, ec, q, idGen, parserModule, scoringModule, jdModule)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "10s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *AnalysisHandlerTestSuite) TearDownSuite() {
	for _, table := range []string{"reports", "report_contacts", "report_skills", "processing_logs"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *AnalysisHandlerTestSuite) newAnalyzeRequest(path string) *http.Request {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "resume.txt")
	require.NoError(s.T(), err)
	_, err = fw.Write([]byte(sampleResume))
	require.NoError(s.T(), err)
	require.NoError(s.T(), w.WriteField("job_description", sampleJD))
	require.NoError(s.T(), w.Close())

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func (s *AnalysisHandlerTestSuite) TestAnalyze() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[web.ReportVO]()
	s.server.ServeHTTP(recorder, s.newAnalyzeRequest("/resume/analyze"))
	require.Equal(t, 200, recorder.Code)

	res := recorder.MustScan()
	assert.NotEmpty(t, res.Data.Tid)
	assert.Equal(t, "john.doe@example.com", res.Data.Contact.Email)
	assert.Greater(t, res.Data.OverallScore, 50.0)
	assert.NotEmpty(t, res.Data.Classification)

	// 再查一次报告
	req, err := http.NewRequest(http.MethodGet, "/resume/report/"+res.Data.Tid, nil)
	require.NoError(t, err)
	recorder2 := test.NewJSONResponseRecorder[web.ReportVO]()
	s.server.ServeHTTP(recorder2, req)
	require.Equal(t, 200, recorder2.Code)
	assert.Equal(t, res.Data.Tid, recorder2.MustScan().Data.Tid)
}

func (s *AnalysisHandlerTestSuite) TestList() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[web.ReportVO]()
	s.server.ServeHTTP(recorder, s.newAnalyzeRequest("/resume/analyze"))
	require.Equal(t, 200, recorder.Code)

	var buf bytes.Buffer
	buf.WriteString(`{"offset":0,"limit":10}`)
	req, err := http.NewRequest(http.MethodPost, "/resume/list", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	listRecorder := test.NewJSONResponseRecorder[web.ReportListVO]()
	s.server.ServeHTTP(listRecorder, req)
	require.Equal(t, 200, listRecorder.Code)
	res := listRecorder.MustScan()
	assert.GreaterOrEqual(t, res.Data.Total, int64(1))
	assert.NotEmpty(t, res.Data.Reports)
}

func TestAnalysisHandler(t *testing.T) {
	suite.Run(t, new(AnalysisHandlerTestSuite))
}
