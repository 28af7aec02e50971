package parser

type Module struct {
	Svc Service
}
