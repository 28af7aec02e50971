package parser

import (
	"github.com/resumatch/resumatch/internal/parser/internal/domain"
	"github.com/resumatch/resumatch/internal/parser/internal/service"
)

type Resume = domain.Resume
type Entry = domain.Entry
type Contact = domain.Contact
type Service = service.Service
