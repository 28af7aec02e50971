package jd

import (
	"github.com/resumatch/resumatch/internal/jd/internal/domain"
	"github.com/resumatch/resumatch/internal/jd/internal/service"
)

type JD = domain.JD
type Service = service.Service
