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
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/olivere/elastic/v7"
	"github.com/resumatch/resumatch/internal/search"
	"github.com/resumatch/resumatch/internal/search/internal/web"
	"github.com/resumatch/resumatch/internal/test"
	testioc "github.com/resumatch/resumatch/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	es     *elastic.Client
	module *search.Module
}

func (s *HandlerTestSuite) SetupSuite() {
	s.es = testioc.InitES()
	q := testioc.InitMQ()
	module, err := search.InitModule(s.es, q)
	require.NoError(s.T(), err)
	s.module = module

	econf.Set("server", map[string]any{"contextTimeout": "10s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TestSearch() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.module.SyncSvc.Input(ctx, "report_index", "1",
		`{"id":1,"tid":"tid-1","filename":"resume.txt","header_title":"Senior Software Engineer",`+
			`"name":"John Doe","skills":["python","kubernetes"],"overall_score":88.5,"classification":"Good Fit"}`)
	require.NoError(t, err)
	_, err = s.es.Refresh("report_index").Do(ctx)
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.WriteString(`{"keywords":"kubernetes"}`)
	req, err := http.NewRequest(http.MethodPost, "/report/search", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SearchResultVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	res := recorder.MustScan()
	require.NotEmpty(t, res.Data.Reports)
	assert.Equal(t, "tid-1", res.Data.Reports[0].Tid)
	assert.Equal(t, 88.5, res.Data.Reports[0].OverallScore)
}

func TestSearchHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
