package playback

// Player запускает воспроизведение и сразу возвращает управление.
type Player interface {
	Play(path string) *Handle
}
