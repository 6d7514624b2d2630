package catalog

func (h *Handler) SetIDGenerator(fn func() string) {
	h.newID = fn
}
