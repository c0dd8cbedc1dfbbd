package local

import "github.com/iamvkosarev/krishisahay-bot/internal/model"

var (
	TextWelcome = NewSet(
		"🌾 KrishiSahay\nYour AI Farming Companion\n\n"+
			"🌱 Smart Crops: AI-powered crop recommendations\n"+
			"🧪 Fertilizers: Nutrient guidance & planning\n"+
			"🔄 Rotation: Crop rotation optimization\n"+
			"⛅ Weather: Real-time weather insights\n\n"+
			"Ask me about farming, crops, weather, fertilizers...",
		NewTrans(
			model.LanguageHindi,
			"🌾 कृषि सहाय\nआपका AI कृषि साथी\n\n"+
				"🌱 स्मार्ट फसलें: AI-संचालित फसल सुझाव\n"+
				"🧪 उर्वरक: पोषण मार्गदर्शन और योजना\n"+
				"🔄 रोटेशन: फसल चक्र अनुकूलन\n"+
				"⛅ मौसम: रीयल-टाइम मौसम अंतर्दृष्टि\n\n"+
				"खेती, फसल, मौसम, उर्वरक के बारे में पूछें...",
		),
	)
	TextHelp = NewSet(
		"KrishiSahay - Your AI Farming Assistant\n\n"+
			"🌾 Features:\n"+
			"• Ask about crop cultivation\n"+
			"• Get fertilizer recommendations\n"+
			"• Learn about crop rotation\n"+
			"• Get weather information\n"+
			"• Support for English & Hindi\n\n"+
			"💡 Tips:\n"+
			"• Be specific about your crops\n"+
			"• Include location for local advice\n"+
			"• Enable audio for voice responses\n\n"+
			"Commands: /new, /chats, /lang, /settings, /audio",
		NewTrans(
			model.LanguageHindi,
			"कृषि सहाय - आपका AI कृषि सहायक\n\n"+
				"🌾 सुविधाएँ:\n"+
				"• फसल की खेती के बारे में पूछें\n"+
				"• उर्वरक सुझाव प्राप्त करें\n"+
				"• फसल चक्र के बारे में जानें\n"+
				"• मौसम की जानकारी प्राप्त करें\n"+
				"• अंग्रेज़ी और हिंदी का समर्थन\n\n"+
				"💡 सुझाव:\n"+
				"• अपनी फसल के बारे में स्पष्ट रहें\n"+
				"• स्थानीय सलाह के लिए स्थान बताएं\n"+
				"• आवाज़ में उत्तर के लिए ऑडियो चालू करें\n\n"+
				"कमांड: /new, /chats, /lang, /settings, /audio",
		),
	)
	TextPleaseEnter = NewSet(
		"Please enter a question!",
		NewTrans(model.LanguageHindi, "कृपया एक प्रश्न दर्ज करें!"),
	)
	TextThinking = NewSet(
		"KrishiSahay is thinking...",
		NewTrans(model.LanguageHindi, "कृषि सहाय सोच रहा है..."),
	)
	TextErrorFormat = NewSet(
		"Error: %s",
		NewTrans(model.LanguageHindi, "त्रुटि: %s"),
	)
	TextRequestFailedFormat = NewSet(
		"Request failed: %s",
		NewTrans(model.LanguageHindi, "अनुरोध विफल: %s"),
	)
	TextAskInFlight = NewSet(
		"Please wait for the answer to your previous question.",
		NewTrans(model.LanguageHindi, "कृपया अपने पिछले प्रश्न के उत्तर की प्रतीक्षा करें।"),
	)
	TextServerError = NewSet(
		"Something went wrong. Try later.",
		NewTrans(model.LanguageHindi, "कुछ गलत हो गया। बाद में प्रयास करें।"),
	)
	TextNoAccess = NewSet(
		"You are not allowed to use this bot.",
		NewTrans(model.LanguageHindi, "आपको इस बॉट का उपयोग करने की अनुमति नहीं है।"),
	)
	TextUnknownCommand = NewSet(
		"I don't know that command.",
		NewTrans(model.LanguageHindi, "मैं यह कमांड नहीं जानता।"),
	)
	TextNewChat = NewSet(
		"Started a new chat.",
		NewTrans(model.LanguageHindi, "नई बातचीत शुरू हुई।"),
	)
	TextChatHistory = NewSet(
		"Chat History",
		NewTrans(model.LanguageHindi, "बातचीत का इतिहास"),
	)
	TextNoChats = NewSet(
		"No saved chats yet.",
		NewTrans(model.LanguageHindi, "अभी कोई सहेजी गई बातचीत नहीं है।"),
	)
	TextChatFallbackTitleFormat = NewSet(
		"Chat %d",
		NewTrans(model.LanguageHindi, "बातचीत %d"),
	)
	TextChatNotFound = NewSet(
		"This chat no longer exists.",
		NewTrans(model.LanguageHindi, "यह बातचीत अब मौजूद नहीं है।"),
	)
	TextConfirmDeleteFormat = NewSet(
		"Delete this chat?\n%s",
		NewTrans(model.LanguageHindi, "यह बातचीत हटाएं?\n%s"),
	)
	TextChatDeleted = NewSet(
		"Chat deleted.",
		NewTrans(model.LanguageHindi, "बातचीत हटा दी गई।"),
	)
	TextYes = NewSet("Yes", NewTrans(model.LanguageHindi, "हाँ"))
	TextNo  = NewSet("No", NewTrans(model.LanguageHindi, "नहीं"))
	TextLanguageChanged = NewSet(
		"Language: English",
		NewTrans(model.LanguageHindi, "भाषा: हिंदी"),
	)
	TextSettings = NewSet(
		"Settings",
		NewTrans(model.LanguageHindi, "सेटिंग्स"),
	)
	TextEnableAudio = NewSet(
		"Enable audio responses",
		NewTrans(model.LanguageHindi, "ऑडियो प्रतिक्रिया सक्षम करें"),
	)
	TextEnableAnimations = NewSet(
		"Enable animations",
		NewTrans(model.LanguageHindi, "एनिमेशन सक्षम करें"),
	)
	TextDarkMode = NewSet(
		"Dark mode",
		NewTrans(model.LanguageHindi, "डार्क मोड"),
	)
	TextVoiceOutputOn = NewSet(
		"Voice Output: ON",
		NewTrans(model.LanguageHindi, "आवाज़ आउटपुट: चालू"),
	)
	TextVoiceOutputOff = NewSet(
		"Voice Output: OFF",
		NewTrans(model.LanguageHindi, "आवाज़ आउटपुट: बंद"),
	)

	TextCommandNew = NewSet(
		"Start a new chat",
		NewTrans(model.LanguageHindi, "नई बातचीत शुरू करें"),
	)
	TextCommandChats = NewSet(
		"Show chat history",
		NewTrans(model.LanguageHindi, "बातचीत का इतिहास देखें"),
	)
	TextCommandLanguage = NewSet(
		"Switch English / Hindi",
		NewTrans(model.LanguageHindi, "अंग्रेज़ी / हिंदी बदलें"),
	)
	TextCommandSettings = NewSet(
		"Settings",
		NewTrans(model.LanguageHindi, "सेटिंग्स"),
	)
	TextCommandAudio = NewSet(
		"Toggle voice replies",
		NewTrans(model.LanguageHindi, "आवाज़ में उत्तर चालू / बंद करें"),
	)
	TextCommandHelp = NewSet(
		"Get help",
		NewTrans(model.LanguageHindi, "सहायता"),
	)

	// Crop reference blocks for the advisor prompt.
	TextCropInfoFormat = NewSet(
		"Crop: %s\n"+
			"Crop type: %s\n"+
			"Description: %s\n"+
			"Suitable climate: %s\n"+
			"Suitable soil: %s\n"+
			"Ideal temperature (°C): %s\n"+
			"Water requirement: %s\n"+
			"Growing season: %s\n"+
			"Market price (₹/kg): %d",
		NewTrans(
			model.LanguageHindi,
			"फसल: %s\n"+
				"फसल प्रकार: %s\n"+
				"विवरण: %s\n"+
				"उपयुक्त जलवायु: %s\n"+
				"उपयुक्त मिट्टी: %s\n"+
				"आदर्श तापमान (°C): %s\n"+
				"पानी की आवश्यकता: %s\n"+
				"उगाने का मौसम: %s\n"+
				"बाज़ार मूल्य (₹/किलो): %d",
		),
	)
	TextCropRotationFormat = NewSet(
		"Next crop: %s\n"+
			"Season: %s\n"+
			"Reason: %s\n"+
			"Soil effect: %s\n"+
			"Pest/Disease benefit: %s\n"+
			"Gap (days): %d\n"+
			"Precautions: %s",
		NewTrans(
			model.LanguageHindi,
			"अगली फसल: %s\n"+
				"मौसम: %s\n"+
				"कारण: %s\n"+
				"मिट्टी पर प्रभाव: %s\n"+
				"कीट/रोग लाभ: %s\n"+
				"अंतराल (दिन): %d\n"+
				"सावधानियाँ: %s",
		),
	)
	TextNoFertilizerData = NewSet(
		"No specific fertilizer data available.",
		NewTrans(model.LanguageHindi, "उर्वरक की कोई विशेष जानकारी उपलब्ध नहीं है।"),
	)
	TextNoRotationData = NewSet(
		"No crop rotation data available.",
		NewTrans(model.LanguageHindi, "फसल चक्र की कोई जानकारी उपलब्ध नहीं है।"),
	)
	TextCropContextFormat = NewSet(
		"Crop Information for %s:\nBasic Info:\n%s\nFertilizer Requirements: %s\nCrop Rotation Tips:\n%s",
	)
)
