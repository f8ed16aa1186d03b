package worker

import "context"

func (p *Poller) Tick(ctx context.Context) {
	p.tick(ctx)
}
