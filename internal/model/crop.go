package model

// CropRotation is a recommended follow-up crop.
type CropRotation struct {
	NextCrop      string
	NextCropHindi string
	Season        string
	Reason        string
	SoilEffect    string
	PestBenefit   string
	GapDays       int
	Precautions   string
}

// Crop is the reference data the advisor prompt is enriched with.
type Crop struct {
	Key              string
	Name             string
	NameHindi        string
	Type             string
	Description      string
	DescriptionHindi string
	Climate          string
	Soil             string
	Temperature      string
	Water            string
	Season           string
	PricePerKg       int
	Fertilizer       string
	Rotations        []CropRotation
}

func (c Crop) LocalName(language Language) string {
	if language == LanguageHindi {
		return c.NameHindi
	}
	return c.Name
}

func (c Crop) LocalDescription(language Language) string {
	if language == LanguageHindi {
		return c.DescriptionHindi
	}
	return c.Description
}

func (r CropRotation) LocalNextCrop(language Language) string {
	if language == LanguageHindi {
		return r.NextCropHindi
	}
	return r.NextCrop
}
