// Package watch keeps generated output current: it regenerates when the
// configuration or dimension tables change on disk and on a cron schedule,
// so sitemap lastmod dates advance without operator action.
package watch
