package gadsclient

// Estruturas do payload da API REST do Google Ads. Os valores monetários
// chegam em micros e são mantidos assim até a normalização.

type Campaign struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
}

type CampaignBudget struct {
	AmountMicros string `json:"amountMicros"`
}

type AdGroup struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Status           string      `json:"status"`
	TargetingSetting interface{} `json:"targetingSetting,omitempty"`
}

type AdText struct {
	Text string `json:"text"`
}

type ResponsiveSearchAd struct {
	Headlines    []AdText `json:"headlines,omitempty"`
	Descriptions []AdText `json:"descriptions,omitempty"`
}

type ImageAd struct {
	ImageURL string `json:"imageUrl,omitempty"`
}

type Ad struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Type               string              `json:"type"`
	FinalURLs          []string            `json:"finalUrls,omitempty"`
	ResponsiveSearchAd *ResponsiveSearchAd `json:"responsiveSearchAd,omitempty"`
	ImageAd            *ImageAd            `json:"imageAd,omitempty"`
}

type AdGroupAd struct {
	Status string `json:"status"`
	Ad     Ad     `json:"ad"`
}

type Metrics struct {
	Impressions string  `json:"impressions"`
	Clicks      string  `json:"clicks"`
	Conversions float64 `json:"conversions"`
	CTR         float64 `json:"ctr"`
	AverageCPC  float64 `json:"averageCpc"`
}

type SearchResult struct {
	Campaign       *Campaign       `json:"campaign,omitempty"`
	CampaignBudget *CampaignBudget `json:"campaignBudget,omitempty"`
	AdGroup        *AdGroup        `json:"adGroup,omitempty"`
	AdGroupAd      *AdGroupAd      `json:"adGroupAd,omitempty"`
	Metrics        *Metrics        `json:"metrics,omitempty"`
}

type SearchResponse struct {
	Results       []SearchResult `json:"results"`
	NextPageToken string         `json:"nextPageToken"`
}

type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
