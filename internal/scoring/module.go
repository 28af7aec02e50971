package scoring

type Module struct {
	Svc Service
}
