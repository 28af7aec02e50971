package ai

type Module struct {
	Svc EmbedService
}
