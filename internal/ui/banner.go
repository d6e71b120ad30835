package ui

const banner = `
-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=
▗▖ ▗▖ ▗▄▖  ▗▄▄▖▗▖ ▗▖ ▗▄▄▖▗▄▄▄▖▗▄▄▄▖▗▖ ▗▖
▐▌ ▐▌▐▌ ▐▌▐▌   ▐▌ ▐▌▐▌   ▐▌   ▐▌   ▐▌▗▞▘
▐▛▀▜▌▐▛▀▜▌ ▝▀▚▖▐▛▀▜▌ ▝▀▚▖▐▛▀▀▘▐▛▀▀▘▐▛▚▖
▐▌ ▐▌▐▌ ▐▌▗▄▄▞▘▐▌ ▐▌▗▄▄▞▘▐▙▄▄▖▐▙▄▄▖▐▌ ▐▌
-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=
`

// Banner returns the styled program banner
func Banner() string {
	return BannerStyle.Render(banner)
}
