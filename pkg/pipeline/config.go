package pipeline

import (
	"log/slog"

	"github.com/adrianliechti/docread/pkg/ledger"
)

type Option func(*Pipeline)

func WithLedger(l *ledger.Ledger) Option {
	return func(p *Pipeline) {
		p.ledger = l
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

func WithZip(create bool) Option {
	return func(p *Pipeline) {
		p.createZip = create
	}
}
