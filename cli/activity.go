// ABOUTME: Activity feed and notification CLI commands
// ABOUTME: Recent activity listing, pruning, and the notification inbox
package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/feed"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/notify"
	"github.com/harperreed/refit/store"
)

// ActivityCommand prints the recent activity feed.
func ActivityCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("activity", flag.ExitOnError)
	days := fs.Int("days", 7, "How many days back to look")
	user := fs.String("user", "", "Filter by team member ID")
	search := fs.String("search", "", "Substring search")
	prune := fs.Int("prune", 0, "Delete entries older than this many days")
	_ = fs.Parse(args)

	if *prune > 0 {
		removed := db.ClearOldActivities(s, time.Now().AddDate(0, 0, -*prune))
		fmt.Printf("✓ Pruned %d entries\n", removed)
		return nil
	}

	from := time.Now().AddDate(0, 0, -*days)
	f := feed.Filter{From: &from, Search: *search, VisibleOnly: true}
	if *user != "" {
		f.UserIDs = []string{*user}
	}

	entries := db.ActivityFeed(s, f)
	if len(entries) == 0 {
		fmt.Println("No recent activity")
		return nil
	}

	for _, e := range entries {
		who := e.UserName
		if who == "" {
			who = "someone"
		}
		target := e.TargetName
		if target == "" {
			target = e.TargetID
		}
		fmt.Printf("%s  %s %s %s\n", e.CreatedAt.Format("2006-01-02 15:04"), who, e.Action, target)
	}
	return nil
}

// NotificationsCommand prints the notification inbox.
func NotificationsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ExitOnError)
	all := fs.Bool("all", false, "Include already-read notifications")
	grouped := fs.Bool("grouped", false, "Collapse similar notifications")
	markRead := fs.Bool("mark-read", false, "Mark everything read afterwards")
	_ = fs.Parse(args)

	var list []*models.Notification
	if *all {
		list = db.AllNotifications(s)
	} else {
		list = db.UnreadNotifications(s)
	}

	if len(list) == 0 {
		fmt.Println("No notifications")
		return nil
	}

	if *grouped {
		for _, g := range notify.GroupNotifications(list) {
			fmt.Printf("(%d) %s\n", len(g.Notifications), g.Latest.Message)
		}
	} else {
		for _, n := range list {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("%s [%s] %s\n", marker, n.Type, n.Message)
		}
	}

	if *markRead {
		count := db.MarkAllNotificationsRead(s, time.Now())
		fmt.Printf("\n✓ Marked %d notification(s) read\n", count)
	}
	return nil
}
