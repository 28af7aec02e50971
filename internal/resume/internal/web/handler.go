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
	"errors"
	"io"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/resumatch/resumatch/internal/pkg/document"
	"github.com/resumatch/resumatch/internal/resume/internal/domain"
	"github.com/resumatch/resumatch/internal/resume/internal/service"
	"gorm.io/gorm"
)

// maxResumeSize 单份简历最大 10MB，再大的基本不是简历
const maxResumeSize = 10 << 20

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/resume/analyze", ginx.W(h.Analyze))
	server.POST("/resume/analyze/async", ginx.W(h.AnalyzeAsync))
	server.GET("/resume/report/:tid", ginx.W(h.Report))
	server.POST("/resume/list", ginx.B[Page](h.List))
}

func (h *Handler) Analyze(ctx *ginx.Context) (ginx.Result, error) {
	filename, data, jobDesc, err := h.readUpload(ctx)
	if err != nil {
		return invalidFileResult, err
	}
	report, err := h.svc.Analyze(ctx, filename, data, jobDesc)
	if errors.Is(err, document.ErrUnsupportedType) || errors.Is(err, document.ErrTextTooShort) {
		return invalidFileResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newReportVO(report),
	}, nil
}

func (h *Handler) AnalyzeAsync(ctx *ginx.Context) (ginx.Result, error) {
	filename, data, jobDesc, err := h.readUpload(ctx)
	if err != nil {
		return invalidFileResult, err
	}
	tid, err := h.svc.AnalyzeAsync(ctx, filename, data, jobDesc)
	if errors.Is(err, document.ErrUnsupportedType) || errors.Is(err, document.ErrTextTooShort) {
		return invalidFileResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AsyncTaskVO{Tid: tid},
	}, nil
}

func (h *Handler) Report(ctx *ginx.Context) (ginx.Result, error) {
	tid := ctx.Param("tid").StringOrDefault("")
	report, err := h.svc.Report(ctx, tid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reportNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newReportVO(report),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	reports, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ReportListVO{
			Total: total,
			Reports: slice.Map(reports, func(idx int, src domain.Report) ReportVO {
				return newReportVO(src)
			}),
		},
	}, nil
}

func (h *Handler) readUpload(ctx *ginx.Context) (filename string, data []byte, jobDesc string, err error) {
	file, err := ctx.FormFile("file")
	if err != nil {
		return "", nil, "", err
	}
	if file.Size > maxResumeSize {
		return "", nil, "", errors.New("简历文件过大")
	}
	f, err := file.Open()
	if err != nil {
		return "", nil, "", err
	}
	defer f.Close()
	data, err = io.ReadAll(f)
	if err != nil {
		return "", nil, "", err
	}
	return file.Filename, data, ctx.PostForm("job_description"), nil
}
