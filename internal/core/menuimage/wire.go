package menuimage

// ItemRequest 菜品請求欄位
type ItemRequest struct {
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	Mode       string `json:"mode,omitempty"`
	CustomURL  string `json:"custom_url,omitempty"`
	LibraryKey string `json:"library_key,omitempty"`
}

// RestaurantRequest 餐廳請求欄位
// auto_images_enabled 省略時視為開啟
type RestaurantRequest struct {
	Strategy          string `json:"strategy,omitempty"`
	AutoImagesEnabled *bool  `json:"auto_images_enabled,omitempty"`
}

// ResolveRequest 單一菜品解析請求
type ResolveRequest struct {
	Item       ItemRequest       `json:"item"`
	Restaurant RestaurantRequest `json:"restaurant"`
}

// ResolveResponse 單一菜品解析回應
type ResolveResponse struct {
	Image *ImageResult `json:"image"`
}

// BatchResolveRequest 整份菜單解析請求
type BatchResolveRequest struct {
	Restaurant RestaurantRequest `json:"restaurant"`
	Items      []ItemRequest     `json:"items"`
}

// BatchResolveResponse 整份菜單解析回應，順序與請求相同
type BatchResolveResponse struct {
	Images []*ImageResult `json:"images"`
}

// ToItem 轉換並驗證菜品欄位
func (r ItemRequest) ToItem() (Item, error) {
	mode, err := ParseMode(r.Mode)
	if err != nil {
		return Item{}, err
	}
	return Item{
		Name:       r.Name,
		Category:   r.Category,
		Mode:       mode,
		CustomURL:  r.CustomURL,
		LibraryKey: r.LibraryKey,
	}, nil
}

// ToRestaurant 轉換並驗證餐廳欄位
func (r RestaurantRequest) ToRestaurant() (Restaurant, error) {
	strategy, err := ParseStrategy(r.Strategy)
	if err != nil {
		return Restaurant{}, err
	}
	enabled := true
	if r.AutoImagesEnabled != nil {
		enabled = *r.AutoImagesEnabled
	}
	return Restaurant{Strategy: strategy, AutoImagesEnabled: enabled}, nil
}
