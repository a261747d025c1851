package domain

// SiteConfigKeys lists the display settings the site understands, in
// page order.
var SiteConfigKeys = []string{
	"hero_video",
	"about_bg",
	"about_video",
	"events_bg",
	"events_video",
	"gallery_bg",
	"gallery_video",
	"contact_bg",
	"contact_video",
}

var defaultSiteConfig = map[string]string{
	"hero_video":    "https://videos.pexels.com/video-files/3129671/3129671-hd_1920_1080_30fps.mp4",
	"about_bg":      "https://images.unsplash.com/photo-1537462715879-360eeb61a0ad?w=1400",
	"about_video":   "",
	"events_bg":     "https://images.unsplash.com/photo-1518770660439-4636190af475?w=1400",
	"events_video":  "",
	"gallery_bg":    "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=1400",
	"gallery_video": "",
	"contact_bg":    "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=1400",
	"contact_video": "",
}

// DefaultSiteConfig returns a fresh copy of the built-in settings.
func DefaultSiteConfig() map[string]string {
	conf := make(map[string]string, len(defaultSiteConfig))
	for k, v := range defaultSiteConfig {
		conf[k] = v
	}

	return conf
}

func IsSiteConfigKey(key string) bool {
	_, ok := defaultSiteConfig[key]
	return ok
}
