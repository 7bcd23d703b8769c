package types

// MediaMaterial represents the category of the reported media material
type MediaMaterial string

const (
	MediaMaterialVideo     MediaMaterial = "video"
	MediaMaterialImage     MediaMaterial = "image"
	MediaMaterialArticle   MediaMaterial = "article"
	MediaMaterialAudio     MediaMaterial = "audio"
	MediaMaterialBroadcast MediaMaterial = "broadcast"
	MediaMaterialOther     MediaMaterial = "other"
)

// Platform represents the platform where the material was published
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformX         Platform = "x"
	PlatformTikTok    Platform = "tiktok"
	PlatformWebsite   Platform = "website"
	PlatformOther     Platform = "other"
)

// fallbackCode is used for any category value without an assigned serial code.
// Unmapped values fail closed to it instead of erroring.
const fallbackCode = "X"

var materialCodes = map[MediaMaterial]string{
	MediaMaterialVideo:     "V",
	MediaMaterialImage:     "I",
	MediaMaterialArticle:   "A",
	MediaMaterialAudio:     "U",
	MediaMaterialBroadcast: "B",
	MediaMaterialOther:     "O",
}

var platformCodes = map[Platform]string{
	PlatformYouTube:   "Y",
	PlatformFacebook:  "F",
	PlatformInstagram: "G",
	PlatformX:         "T",
	PlatformTikTok:    "K",
	PlatformWebsite:   "W",
	PlatformOther:     "O",
}

// String returns the string representation
func (m MediaMaterial) String() string {
	return string(m)
}

// IsValid checks if the material category is valid
func (m MediaMaterial) IsValid() bool {
	_, ok := materialCodes[m]
	return ok
}

// Code returns the single-letter serial-number code for the material
func (m MediaMaterial) Code() string {
	if code, ok := materialCodes[m]; ok {
		return code
	}
	return fallbackCode
}

// String returns the string representation
func (p Platform) String() string {
	return string(p)
}

// IsValid checks if the platform category is valid
func (p Platform) IsValid() bool {
	_, ok := platformCodes[p]
	return ok
}

// Code returns the single-letter serial-number code for the platform
func (p Platform) Code() string {
	if code, ok := platformCodes[p]; ok {
		return code
	}
	return fallbackCode
}
