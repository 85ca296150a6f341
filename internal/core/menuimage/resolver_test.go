package menuimage

import (
	"fmt"
	"testing"

	"menu-image-resolver/internal/core/catalog"
	"menu-image-resolver/internal/pkg/common"
)

func illustratedURL(id string) catalog.ImageRef {
	return catalog.ImageRef("/images/illustrated/" + id + ".webp")
}

func photoURL(id string) catalog.ImageRef {
	return catalog.ImageRef("/images/photo/" + id + ".jpg")
}

func enabled(strategy Strategy) Restaurant {
	return Restaurant{Strategy: strategy, AutoImagesEnabled: true}
}

func TestResolveScenarios(t *testing.T) {
	t.Parallel()

	r := Default()

	tests := []struct {
		name       string
		item       Item
		restaurant Restaurant
		wantOK     bool
		wantURL    catalog.ImageRef
		wantStyle  Style
		wantLabel  string
	}{
		{
			name:       "illustrated keyword match",
			item:       Item{Name: "Döner im Brot", Mode: ModeAuto},
			restaurant: enabled(StrategyIllustrated),
			wantOK:     true,
			wantURL:    illustratedURL("doener"),
			wantStyle:  StyleIllustrated,
			wantLabel:  "Döner Kebab",
		},
		{
			name:       "photographic category fallback",
			item:       Item{Name: "Exotic Fusion Plate", Mode: ModeAuto, Category: "Hauptgerichte"},
			restaurant: enabled(StrategyPhotographic),
			wantOK:     true,
			wantURL:    "/images/photo/fallback/main.jpg",
			wantStyle:  StylePhotographic,
			wantLabel:  "Exotic Fusion Plate",
		},
		{
			name:       "photographic generic fallback",
			item:       Item{Name: "Quinoa Bowl", Mode: ModeAuto, Category: "Chef's Specials"},
			restaurant: enabled(StrategyPhotographic),
			wantOK:     true,
			wantURL:    "/images/photo/fallback/generic.jpg",
			wantStyle:  StylePhotographic,
			wantLabel:  "Quinoa Bowl",
		},
		{
			name:       "custom wins over keyword match",
			item:       Item{Name: "Pizza Margherita", Mode: ModeCustom, CustomURL: "u"},
			restaurant: enabled(StrategyIllustrated),
			wantOK:     true,
			wantURL:    "u",
			wantStyle:  StyleCustom,
		},
		{
			name:       "professional behaves as photographic",
			item:       Item{Name: "Lachsfilet", Mode: ModeAuto},
			restaurant: enabled(StrategyProfessional),
			wantOK:     true,
			wantURL:    photoURL("salmon"),
			wantStyle:  StylePhotographic,
			wantLabel:  "Lachs",
		},
		{
			name:       "illustrated miss",
			item:       Item{Name: "Exotic Fusion Plate", Mode: ModeAuto, Category: "Hauptgerichte"},
			restaurant: enabled(StrategyIllustrated),
		},
		{
			name:       "generic dish word",
			item:       Item{Name: "Tagesgericht", Mode: ModeAuto},
			restaurant: enabled(StrategyIllustrated),
		},
		{
			name:       "real match inside a generic dish word",
			item:       Item{Name: "Döner Spezialgericht", Mode: ModeAuto},
			restaurant: enabled(StrategyIllustrated),
			wantOK:     true,
			wantURL:    illustratedURL("doener"),
			wantStyle:  StyleIllustrated,
		},
		{
			name:       "mixed match inside a generic dish word",
			item:       Item{Name: "Nudelgericht mit Lachs", Mode: ModeAuto},
			restaurant: enabled(StrategyMixed),
			wantOK:     true,
			wantURL:    photoURL("salmon"),
			wantStyle:  StylePhotographic,
		},
		{
			name:       "illustrated match inside a generic dish word",
			item:       Item{Name: "Nudelgericht mit Lachs", Mode: ModeAuto},
			restaurant: enabled(StrategyIllustrated),
			wantOK:     true,
			wantURL:    illustratedURL("fish"),
			wantStyle:  StyleIllustrated,
		},
		{
			name:       "strategy none",
			item:       Item{Name: "Pizza", Mode: ModeAuto},
			restaurant: enabled(StrategyNone),
		},
		{
			name:       "blank dish name",
			item:       Item{Name: "  ", Mode: ModeAuto, Category: "Hauptgerichte"},
			restaurant: enabled(StrategyPhotographic),
		},
		{
			name:       "mode none",
			item:       Item{Name: "Pizza", Mode: ModeNone},
			restaurant: enabled(StrategyIllustrated),
		},
		{
			name:       "custom without url",
			item:       Item{Name: "Pizza", Mode: ModeCustom},
			restaurant: enabled(StrategyIllustrated),
		},
		{
			name:       "library illustrated pick",
			item:       Item{Name: "anything", Mode: ModeLibrary, LibraryKey: "lahmacun"},
			restaurant: enabled(StrategyPhotographic),
			wantOK:     true,
			wantURL:    illustratedURL("lahmacun"),
			wantStyle:  StyleIllustrated,
		},
		{
			name:       "library photographic pick",
			item:       Item{Mode: ModeLibrary, LibraryKey: "salmon"},
			restaurant: enabled(StrategyNone),
			wantOK:     true,
			wantURL:    photoURL("salmon"),
			wantStyle:  StylePhotographic,
		},
		{
			name:       "library unknown key",
			item:       Item{Name: "Pizza", Mode: ModeLibrary, LibraryKey: "nope"},
			restaurant: enabled(StrategyIllustrated),
		},
		{
			name:       "library placeholder",
			item:       Item{Name: "Pizza", Mode: ModeLibrary, LibraryKey: "placeholder"},
			restaurant: enabled(StrategyIllustrated),
			wantOK:     true,
			wantURL:    illustratedURL("placeholder"),
			wantStyle:  StyleIllustrated,
			wantLabel:  "Gericht",
		},
		{
			name:       "toggle off suppresses library",
			item:       Item{Mode: ModeLibrary, LibraryKey: "pizza"},
			restaurant: Restaurant{Strategy: StrategyIllustrated},
		},
		{
			name:       "toggle off keeps custom",
			item:       Item{Name: "Pizza", Mode: ModeCustom, CustomURL: "https://cdn.example/p.jpg"},
			restaurant: Restaurant{Strategy: StrategyNone},
			wantOK:     true,
			wantURL:    "https://cdn.example/p.jpg",
			wantStyle:  StyleCustom,
		},
		{
			name:       "unknown mode",
			item:       Item{Name: "Pizza", Mode: Mode("gallery")},
			restaurant: enabled(StrategyIllustrated),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := r.Resolve(tc.item, tc.restaurant)
			if ok != tc.wantOK {
				t.Fatalf("Resolve ok = %v, want %v (result %+v)", ok, tc.wantOK, got)
			}
			if !ok {
				if got != (ImageResult{}) {
					t.Errorf("miss returned non-zero result %+v", got)
				}
				return
			}
			if got.URL != tc.wantURL || got.Style != tc.wantStyle {
				t.Errorf("Resolve = %+v, want url %q style %q", got, tc.wantURL, tc.wantStyle)
			}
			if tc.wantLabel != "" && got.Label != tc.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tc.wantLabel)
			}
		})
	}
}

func TestToggleOffSuppressesAutoForEveryStrategy(t *testing.T) {
	t.Parallel()

	r := Default()
	strategies := []Strategy{StrategyIllustrated, StrategyPhotographic, StrategyProfessional, StrategyMixed, StrategyNone}
	dishes := []string{"Pizza", "Döner im Brot", "Currywurst mit Pommes", "Exotic Fusion Plate"}

	for _, s := range strategies {
		for _, dish := range dishes {
			item := Item{Name: dish, Mode: ModeAuto, Category: "Hauptgerichte"}
			if got, ok := r.Resolve(item, Restaurant{Strategy: s}); ok {
				t.Errorf("%s/%s with auto images off = %+v", s, dish, got)
			}
		}
	}
}

func TestLibraryPicksEveryBrowsableEntry(t *testing.T) {
	t.Parallel()

	r := Default()
	for _, c := range []*catalog.Catalog{r.Illustrated(), r.Photographic()} {
		for _, e := range c.All() {
			got, ok := r.Resolve(Item{Mode: ModeLibrary, LibraryKey: e.ID}, enabled(StrategyNone))
			if !ok {
				t.Errorf("%s/%s listed but not selectable", c.Family(), e.ID)
				continue
			}
			// Ids shared by both catalogs resolve to the illustrated entry.
			if _, shared := r.Illustrated().ByID(e.ID); shared && c.Family() == catalog.FamilyPhotographic {
				continue
			}
			if got.URL != e.Image || got.Label != e.Label {
				t.Errorf("%s/%s = %+v, want %s", c.Family(), e.ID, got, e.Image)
			}
		}
	}
}

func TestPhotographicNeverFallsBackToIllustrated(t *testing.T) {
	t.Parallel()

	r := Default()
	// Illustrated-only matches: none of these has a photographic keyword.
	for _, dish := range []string{"Lahmacun", "Tee", "Latte Macchiato", "Fish and Chips", "Tagesgericht", "Ofenkartoffel"} {
		for _, strategy := range []Strategy{StrategyPhotographic, StrategyProfessional} {
			got, ok := r.ResolveByStrategy(dish, "Getränke", strategy)
			if !ok {
				t.Errorf("%s/%s: no result", strategy, dish)
				continue
			}
			if got.Style != StylePhotographic {
				t.Errorf("%s/%s: style = %q", strategy, dish, got.Style)
			}
			if got.Label != dish {
				t.Errorf("%s/%s: label = %q, want dish name", strategy, dish, got.Label)
			}
		}
	}
}

func TestMixedStrategy(t *testing.T) {
	t.Parallel()

	r := Default()

	tests := []struct {
		dish      string
		wantOK    bool
		wantURL   catalog.ImageRef
		wantStyle Style
	}{
		// odd selector with a photographic match
		{dish: "Currywurst mit Pommes", wantOK: true, wantURL: photoURL("currywurst"), wantStyle: StylePhotographic},
		{dish: "Burger", wantOK: true, wantURL: photoURL("burger"), wantStyle: StylePhotographic},
		// odd selector without a photographic match uses illustrated
		{dish: "Latte Macchiato", wantOK: true, wantURL: illustratedURL("coffee"), wantStyle: StyleIllustrated},
		// even selector always uses illustrated
		{dish: "Döner im Brot", wantOK: true, wantURL: illustratedURL("doener"), wantStyle: StyleIllustrated},
		{dish: "Spaghettieis", wantOK: true, wantURL: illustratedURL("ice-cream"), wantStyle: StyleIllustrated},
		// no category fallback in mixed mode
		{dish: "Quinoa Bowl"},
		{dish: "Ofenkartoffel"},
	}

	for _, tc := range tests {
		t.Run(tc.dish, func(t *testing.T) {
			t.Parallel()

			got, ok := r.ResolveByStrategy(tc.dish, "Hauptgerichte", StrategyMixed)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v (result %+v)", ok, tc.wantOK, got)
			}
			if ok && (got.URL != tc.wantURL || got.Style != tc.wantStyle) {
				t.Errorf("got %+v, want url %q style %q", got, tc.wantURL, tc.wantStyle)
			}

			again, againOK := r.ResolveByStrategy(tc.dish, "Hauptgerichte", StrategyMixed)
			if again != got || againOK != ok {
				t.Errorf("second call = %+v, %v; first = %+v, %v", again, againOK, got, ok)
			}
		})
	}
}

func TestSelector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dish string
		want Style
	}{
		{dish: "Döner im Brot", want: StyleIllustrated},
		{dish: "Currywurst mit Pommes", want: StylePhotographic},
		{dish: "Pizza", want: StyleIllustrated},
		{dish: "Burger", want: StylePhotographic},
		{dish: "", want: StyleIllustrated},
		{dish: "a", want: StylePhotographic},
		{dish: "b", want: StyleIllustrated},
		// U+1F355 is a surrogate pair: 0xD83C + 0xDF55 = 0x1B791, odd
		{dish: "\U0001F355", want: StylePhotographic},
	}

	for _, tc := range tests {
		if got := Selector(tc.dish); got != tc.want {
			t.Errorf("Selector(%q) = %q, want %q", tc.dish, got, tc.want)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	t.Parallel()

	r := Default()
	items := []Item{
		{Name: "Döner im Brot", Mode: ModeAuto},
		{Name: "Exotic Fusion Plate", Mode: ModeAuto, Category: "Hauptgerichte"},
		{Name: "Pizza", Mode: ModeLibrary, LibraryKey: "pizza"},
		{Name: "Tiramisu", Mode: ModeCustom, CustomURL: "t.jpg"},
		{Name: "Tagesgericht", Mode: ModeAuto},
	}
	strategies := []Strategy{StrategyIllustrated, StrategyPhotographic, StrategyProfessional, StrategyMixed, StrategyNone}

	for _, s := range strategies {
		for _, item := range items {
			first, firstOK := r.Resolve(item, enabled(s))
			for i := 0; i < 3; i++ {
				got, ok := r.Resolve(item, enabled(s))
				if got != first || ok != firstOK {
					t.Fatalf("%s/%s: call %d = %+v, %v; first = %+v, %v", s, item.Name, i, got, ok, first, firstOK)
				}
			}
		}
	}
}

func TestModePrecedence(t *testing.T) {
	t.Parallel()

	r := Default()
	dishes := []string{"Pizza", "Döner im Brot", "Exotic Fusion Plate", ""}
	strategies := []Strategy{StrategyIllustrated, StrategyPhotographic, StrategyMixed, StrategyNone}

	for _, s := range strategies {
		for _, dish := range dishes {
			if got, ok := r.ResolveMode(Item{Name: dish, Mode: ModeNone}, s); ok {
				t.Errorf("mode none %s/%q = %+v", s, dish, got)
			}

			got, ok := r.ResolveMode(Item{Name: dish, Mode: ModeCustom, CustomURL: "custom.png"}, s)
			want := ImageResult{URL: "custom.png", Style: StyleCustom}
			if !ok || got != want {
				t.Errorf("mode custom %s/%q = %+v, %v", s, dish, got, ok)
			}
		}
	}
}

func TestResolveMenu(t *testing.T) {
	t.Parallel()

	r := Default()
	items := []Item{
		{Name: "Pizza Margherita", Mode: ModeAuto},
		{Name: "Exotic Fusion Plate", Mode: ModeAuto},
		{Name: "Tiramisu", Mode: ModeCustom, CustomURL: "t.jpg"},
	}

	got := r.ResolveMenu(items, enabled(StrategyIllustrated))
	if len(got) != len(items) {
		t.Fatalf("len = %d, want %d", len(got), len(items))
	}
	if got[0] == nil || got[0].URL != illustratedURL("pizza-margherita") {
		t.Errorf("[0] = %+v", got[0])
	}
	if got[1] != nil {
		t.Errorf("[1] = %+v, want nil", got[1])
	}
	if got[2] == nil || got[2].Style != StyleCustom {
		t.Errorf("[2] = %+v", got[2])
	}

	if got := r.ResolveMenu(nil, enabled(StrategyIllustrated)); len(got) != 0 {
		t.Errorf("empty menu = %v", got)
	}
}

func TestCustomCatalogs(t *testing.T) {
	t.Parallel()

	ill, err := catalog.New(catalog.FamilyIllustrated, []catalog.Entry{
		{ID: "x", Keywords: []string{"x"}, Image: "x.svg", Label: "X", Category: catalog.CategoryMain},
		{ID: "generic", Keywords: []string{"gericht"}, Image: "g.svg", Label: "Gericht", Category: catalog.CategoryMain},
	}, "generic")
	if err != nil {
		t.Fatal(err)
	}
	photo, err := catalog.New(catalog.FamilyPhotographic, []catalog.Entry{
		{ID: "xyz", Keywords: []string{"xyz"}, Image: "xyz.jpg", Label: "XYZ", Category: catalog.CategoryMain},
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	fb, err := catalog.NewFallbacks("default.jpg", nil)
	if err != nil {
		t.Fatal(err)
	}

	r := NewResolver(ill, photo, fb)

	if got, ok := r.ResolveByStrategy("Tagesgericht", "", StrategyIllustrated); ok {
		t.Errorf("placeholder match = %+v, want miss", got)
	}
	if got, ok := r.ResolveByStrategy("Tagesgericht", "", StrategyMixed); ok {
		t.Errorf("mixed placeholder match = %+v, want miss", got)
	}

	if got, ok := r.ResolveByStrategy("foo xyz bar", "", StrategyPhotographic); !ok || got.URL != "xyz.jpg" {
		t.Errorf("photographic = %+v, %v", got, ok)
	}
	if got, ok := r.ResolveByStrategy("abc", "", StrategyPhotographic); !ok || got.URL != "default.jpg" {
		t.Errorf("photographic fallback = %+v, %v", got, ok)
	}
	if c, ok := r.Catalog(catalog.FamilyPhotographic); !ok || c != photo {
		t.Error("Catalog(photographic) returned the wrong catalog")
	}
	if _, ok := r.Catalog(catalog.Family("watercolor")); ok {
		t.Error("Catalog(watercolor) found a catalog")
	}
	if r.Fallbacks() != fb {
		t.Error("Fallbacks returned the wrong table")
	}
	if err := r.Verify(); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestResolverVerify(t *testing.T) {
	t.Parallel()

	if err := Default().Verify(); err != nil {
		t.Errorf("default resolver: %v", err)
	}

	bad, err := catalog.New(catalog.FamilyPhotographic, []catalog.Entry{
		{ID: "broken", Keywords: []string{"broken"}, Label: "Broken", Category: catalog.CategoryDessert},
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	fb, err := catalog.NewFallbacks("default.jpg", []catalog.FallbackRule{{Category: catalog.CategoryMain, Image: "m.jpg"}})
	if err != nil {
		t.Fatal(err)
	}
	if err := NewResolver(catalog.Illustrated(), bad, fb).Verify(); err == nil {
		t.Error("Verify accepted a catalog with an empty image and unmapped category")
	}
	if err := NewResolver(nil, bad, fb).Verify(); err == nil {
		t.Error("Verify accepted a nil catalog")
	}
}

func TestParseStrategyAndMode(t *testing.T) {
	t.Parallel()

	strategies := map[string]Strategy{
		"":              StrategyIllustrated,
		"illustrated":   StrategyIllustrated,
		"Photographic":  StrategyPhotographic,
		" professional": StrategyProfessional,
		"MIXED":         StrategyMixed,
		"none":          StrategyNone,
	}
	for in, want := range strategies {
		got, err := ParseStrategy(in)
		if err != nil || got != want {
			t.Errorf("ParseStrategy(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseStrategy("sketch"); !common.IsValidationError(err) {
		t.Errorf("ParseStrategy(sketch) error = %v, want validation error", err)
	}

	modes := map[string]Mode{
		"":        ModeAuto,
		"auto":    ModeAuto,
		"Library": ModeLibrary,
		"custom":  ModeCustom,
		"none":    ModeNone,
	}
	for in, want := range modes {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseMode("upload"); !common.IsValidationError(err) {
		t.Errorf("ParseMode(upload) error = %v, want validation error", err)
	}
}

func TestRequestConversion(t *testing.T) {
	t.Parallel()

	off := false
	tests := []struct {
		name    string
		req     RestaurantRequest
		want    Restaurant
		wantErr bool
	}{
		{name: "defaults", req: RestaurantRequest{}, want: Restaurant{Strategy: StrategyIllustrated, AutoImagesEnabled: true}},
		{name: "toggle off", req: RestaurantRequest{Strategy: "mixed", AutoImagesEnabled: &off}, want: Restaurant{Strategy: StrategyMixed}},
		{name: "bad strategy", req: RestaurantRequest{Strategy: "oil-painting"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.req.ToRestaurant()
			if (err != nil) != tc.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ToRestaurant = %+v, want %+v", got, tc.want)
			}
		})
	}

	item, err := ItemRequest{Name: "Pizza", Mode: "custom", CustomURL: "p.jpg"}.ToItem()
	if err != nil || item.Mode != ModeCustom || item.CustomURL != "p.jpg" {
		t.Errorf("ToItem = %+v, %v", item, err)
	}
	if _, err := (ItemRequest{Mode: "???"}).ToItem(); err == nil {
		t.Error("ToItem accepted an unknown mode")
	}
}

func ExampleResolver_Resolve() {
	r := Default()
	res, ok := r.Resolve(
		Item{Name: "Döner im Brot", Mode: ModeAuto},
		Restaurant{Strategy: StrategyIllustrated, AutoImagesEnabled: true},
	)
	fmt.Println(ok, res.Style, res.URL)
	// Output: true illustrated /images/illustrated/doener.webp
}
