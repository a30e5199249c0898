package services

import (
	"context"

	"github.com/sbilibin2017/applock-backend/internal/models"
)

// mockApps is the fixed catalog of well-known apps shown in the selection
// UI. The list is deterministic: same 20 entries, same order, on every call.
var mockApps = []models.CatalogApp{
	{Name: "Facebook", PackageName: "com.facebook.katana", Icon: "📘"},
	{Name: "WhatsApp", PackageName: "com.whatsapp", Icon: "💬"},
	{Name: "Instagram", PackageName: "com.instagram.android", Icon: "📷"},
	{Name: "TikTok", PackageName: "com.zhiliaoapp.musically", Icon: "🎵"},
	{Name: "YouTube", PackageName: "com.google.android.youtube", Icon: "▶️"},
	{Name: "Twitter", PackageName: "com.twitter.android", Icon: "🐦"},
	{Name: "Snapchat", PackageName: "com.snapchat.android", Icon: "👻"},
	{Name: "Netflix", PackageName: "com.netflix.mediaclient", Icon: "🎬"},
	{Name: "Spotify", PackageName: "com.spotify.music", Icon: "🎶"},
	{Name: "Games", PackageName: "com.games.app", Icon: "🎮"},
	{Name: "Amazon", PackageName: "com.amazon.mShop.android.shopping", Icon: "📦"},
	{Name: "Google Maps", PackageName: "com.google.android.apps.maps", Icon: "🗺️"},
	{Name: "Gmail", PackageName: "com.google.android.gm", Icon: "📧"},
	{Name: "Chrome", PackageName: "com.android.chrome", Icon: "🌐"},
	{Name: "Discord", PackageName: "com.discord", Icon: "💬"},
	{Name: "Telegram", PackageName: "org.telegram.messenger", Icon: "📤"},
	{Name: "Pinterest", PackageName: "com.pinterest", Icon: "📌"},
	{Name: "Reddit", PackageName: "com.reddit.frontpage", Icon: "🤖"},
	{Name: "Uber", PackageName: "com.ubercab", Icon: "🚗"},
	{Name: "Banking", PackageName: "com.banking.app", Icon: "🏦"},
}

// CatalogService serves the fixed catalog of well-known apps.
type CatalogService struct{}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// ListApps returns the catalog. Callers get a copy, so the catalog itself
// cannot be mutated.
func (svc *CatalogService) ListApps(ctx context.Context) []models.CatalogApp {
	apps := make([]models.CatalogApp, len(mockApps))
	copy(apps, mockApps)
	return apps
}
