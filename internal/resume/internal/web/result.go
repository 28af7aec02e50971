package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/resumatch/resumatch/internal/resume/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidFileResult = ginx.Result{
		Code: errs.InvalidFile.Code,
		Msg:  errs.InvalidFile.Msg,
	}
	reportNotFoundResult = ginx.Result{
		Code: errs.ReportNotFound.Code,
		Msg:  errs.ReportNotFound.Msg,
	}
)
