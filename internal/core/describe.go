package core

import (
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/lumipallolabs/hashseek/internal/model"
)

// Describe returns size and content type for each match, in order.
// Files that vanished since the scan keep a zero size and "unknown" type.
func Describe(matches []string) []model.MatchInfo {
	infos := make([]model.MatchInfo, 0, len(matches))
	for _, path := range matches {
		info := model.MatchInfo{Path: path, MIMEType: "unknown"}
		if st, err := os.Stat(path); err == nil {
			info.Size = st.Size()
		}
		if mtype, err := mimetype.DetectFile(path); err == nil {
			info.MIMEType = mtype.String()
		}
		infos = append(infos, info)
	}
	return infos
}
