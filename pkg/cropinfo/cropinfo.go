package cropinfo

import (
	"strings"
	"unicode"

	"github.com/iamvkosarev/krishisahay-bot/internal/model"
	"github.com/iamvkosarev/krishisahay-bot/pkg/local"
)

// Detect returns the first catalog crop named in question, matching English
// names case-insensitively and Hindi names as written.
func Detect(question string) (model.Crop, bool) {
	words := strings.FieldsFunc(
		question, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsMark(r)
		},
	)
	for _, word := range words {
		word = strings.ToLower(word)
		for _, crop := range catalog {
			if word == crop.Key || word == crop.NameHindi {
				return crop, true
			}
		}
	}
	return model.Crop{}, false
}

// Context renders the reference block for crop in language.
func Context(crop model.Crop, language model.Language) string {
	basic := local.TextCropInfoFormat.Format(
		language,
		crop.LocalName(language),
		crop.Type,
		crop.LocalDescription(language),
		crop.Climate,
		crop.Soil,
		crop.Temperature,
		crop.Water,
		crop.Season,
		crop.PricePerKg,
	)

	fertilizer := crop.Fertilizer
	if fertilizer == "" {
		fertilizer = local.TextNoFertilizerData.Text(language)
	}

	rotation := local.TextNoRotationData.Text(language)
	if len(crop.Rotations) > 0 {
		blocks := make([]string, 0, len(crop.Rotations))
		for _, r := range crop.Rotations {
			blocks = append(
				blocks, local.TextCropRotationFormat.Format(
					language,
					r.LocalNextCrop(language),
					r.Season,
					r.Reason,
					r.SoilEffect,
					r.PestBenefit,
					r.GapDays,
					r.Precautions,
				),
			)
		}
		rotation = strings.Join(blocks, "\n\n")
	}

	return local.TextCropContextFormat.Format(language, crop.Key, basic, fertilizer, rotation)
}

// ContextFor detects a crop in question and renders its block.
func ContextFor(question string, language model.Language) (string, bool) {
	crop, ok := Detect(question)
	if !ok {
		return "", false
	}
	return Context(crop, language), true
}
