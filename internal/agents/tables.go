package agents

import "github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"

var baseHashtags = []string{"#FYP", "#Viral", "#TikTok"}

// classicHashtagPool is sampled by the profiles that never classify
var classicHashtagPool = []string{
	"#FYP", "#Viral", "#TrendingNow", "#TikTokChallenge", "#Lifestyle",
	"#Motivation", "#DanceTrend", "#ComedyVibes", "#MorningRoutine",
}

var categoryHashtags = map[string][]string{
	models.CategoryFood:          {"#FoodTok", "#Recipe", "#Foodie", "#CookingHacks", "#Yummy", "#EasyRecipe"},
	models.CategoryHealth:        {"#FitTok", "#Workout", "#HealthyLiving", "#GymMotivation", "#Wellness"},
	models.CategoryFashion:       {"#OOTD", "#FashionTok", "#StyleInspo", "#Outfit", "#GRWM"},
	models.CategoryMotivation:    {"#Motivation", "#Mindset", "#Success", "#DailyInspiration", "#Goals"},
	models.CategoryEducation:     {"#LearnOnTikTok", "#EduTok", "#StudyTips", "#DidYouKnow", "#Knowledge"},
	models.CategoryComedy:        {"#ComedyVibes", "#Funny", "#LOL", "#Relatable", "#Skit"},
	models.CategoryEntertainment: {"#DanceTrend", "#TikTokChallenge", "#Music", "#Trending", "#Entertainment"},
	models.CategoryGeneral:       {"#ForYou", "#Explore", "#Trending", "#TikTokCreator", "#ContentCreator"},
}

var postingTimes = map[string][]string{
	models.CategoryFood:          {"Sunday 11 AM", "Wednesday 6 PM"},
	models.CategoryHealth:        {"Monday 6 AM", "Thursday 7 PM"},
	models.CategoryFashion:       {"Friday 5 PM", "Saturday 11 AM"},
	models.CategoryMotivation:    {"Monday 7 AM", "Wednesday 8 AM"},
	models.CategoryEducation:     {"Tuesday 4 PM", "Thursday 5 PM"},
	models.CategoryComedy:        {"Friday 9 PM", "Saturday 8 PM"},
	models.CategoryEntertainment: {"Friday 7 PM", "Saturday 10 AM"},
	models.CategoryGeneral:       {"Friday 7 PM", "Sunday 8 PM"},
}

var (
	classicEngagement = []string{"High", "Moderate", "Low"}
	classicPostTimes  = []string{"Friday 7 PM", "Saturday 10 AM", "Sunday 8 PM"}
)

// classicFeedback is printed as-is, in order, by the classic profile
var classicFeedback = []string{
	"🎯 Strong start! Keep the first 2 seconds energetic.",
	"🧠 Add captions — videos with captions perform 25% better.",
	"🎵 Use trending sound effects or remixes.",
	"✨ Lighting looks great; maintain consistency across clips.",
	"📈 Add a call-to-action at the end (‘Follow for Part 2!’).",
}

var feedbackPool = append(append([]string(nil), classicFeedback...),
	"⏱️ Keep it under 30 seconds to lift watch-through rate.",
	"💬 Ask a question in the caption to spark comments.",
	"🔁 Loop the ending back into the opening so replays feel seamless.",
	"📍 Put the key moment on screen before the 3 second mark.",
)

var categoryTips = map[string]string{
	models.CategoryFood:          "🍳 Show the finished dish in the first frame, then rewind to the steps.",
	models.CategoryHealth:        "💪 Overlay rep counts or timers so viewers can follow along.",
	models.CategoryFashion:       "👗 Use a quick transition between outfits on the beat drop.",
	models.CategoryMotivation:    "🔥 Open with the one-line takeaway in bold text.",
	models.CategoryEducation:     "📚 Number your points so viewers know how much is left.",
	models.CategoryComedy:        "😂 Cut the pause before the punchline to under half a second.",
	models.CategoryEntertainment: "🎶 Sync cuts to the beat of a trending sound.",
}

var seoFiller = []string{"tiktok", "viral video", "fyp", "trending", "for you", "short video", "content creator"}
