package jd

type Module struct {
	Svc Service
}
