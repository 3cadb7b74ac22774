package selection

import "expodir/internal/domain"

// State holds the selected exhibitor, if any
type State struct {
	Selected *domain.Exhibitor
}
