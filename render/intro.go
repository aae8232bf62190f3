package render

import "github.com/milk9111/paintbox/config"

// Intro returns the canvas fade and sidebar slide progress, both in [0,1],
// after ticks updates at tps. The sidebar starts sliding once the fade is
// done.
func Intro(ticks, tps int, cfg config.IntroConfig) (fade, slide float64) {
	if tps <= 0 {
		return 1, 1
	}
	elapsed := float64(ticks) / float64(tps)
	fade = progress(elapsed, cfg.FadeSeconds)
	if fade < 1 {
		return fade, 0
	}
	return 1, progress(elapsed-cfg.FadeSeconds, cfg.SlideSeconds)
}

func progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return min(max(elapsed/duration, 0), 1)
}
