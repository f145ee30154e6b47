package http

import "dashboard-srv/internal/modal"

type openReq struct {
	// ScrollOffset is the client's scroll position at open time.
	ScrollOffset int `json:"scroll_offset"`
}

func (r openReq) toInput(id string) modal.OpenInput {
	return modal.OpenInput{
		ID:           id,
		ScrollOffset: r.ScrollOffset,
	}
}

type stateResp struct {
	OpenModals   []string `json:"open_modals"`
	OpenCount    int      `json:"open_count"`
	AnyOpen      bool     `json:"any_open"`
	ScrollLocked bool     `json:"scroll_locked"`
	ScrollOffset int      `json:"scroll_offset"`
}

func newStateResp(st modal.State) stateResp {
	return stateResp{
		OpenModals:   st.OpenModals,
		OpenCount:    st.OpenCount,
		AnyOpen:      st.AnyOpen,
		ScrollLocked: st.ScrollLocked,
		ScrollOffset: st.ScrollOffset,
	}
}
