package reference

import "github.com/jonathan/ve-auditor/internal/types"

// Strength describes one exertion level and its definitional thresholds.
type Strength struct {
	Level             types.Exertion `json:"level"`
	Code              string         `json:"code"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	LiftOccasionalLbs float64        `json:"lift_occasional_lbs"`
	LiftFrequentLbs   float64        `json:"lift_frequent_lbs"`
	StandWalkHours    float64        `json:"stand_walk_hours"`
	SitHours          float64        `json:"sit_hours"`
}

// FrequencyInfo describes one frequency level.
type FrequencyInfo struct {
	Code        string `json:"code"`
	Short       string `json:"short"`
	Full        string `json:"full"`
	Percentage  string `json:"percentage"`
	HoursPerDay string `json:"hours_per_day"`
}

// ReasoningNotes lists mental limitations a GED reasoning level tends to
// fit or conflict with.
type ReasoningNotes struct {
	CompatibleWith              []string `json:"compatible_with"`
	PotentiallyIncompatibleWith []string `json:"potentially_incompatible_with"`
}

// TemperamentInfo describes a temperament code.
type TemperamentInfo struct {
	Code           string `json:"code"`
	Description    string `json:"description"`
	Considerations string `json:"considerations"`
}

// Aptitude maps an aptitude code to its record column.
type Aptitude struct {
	Code   string `json:"code"`
	Column string `json:"column"`
	Name   string `json:"name"`
}

// AptitudeLevel describes a 1-5 aptitude level.
type AptitudeLevel struct {
	Description string `json:"description"`
	Percentile  string `json:"percentile"`
}

// NoiseInfo describes one noise intensity level.
type NoiseInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DemandField maps a record column to a demand label.
type DemandField struct {
	Column      string `json:"column"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// GEDAxis names one GED scale.
type GEDAxis string

// GED axes.
const (
	GEDReasoning GEDAxis = "reasoning"
	GEDMath      GEDAxis = "math"
	GEDLanguage  GEDAxis = "language"
)

// WorkerFunctionAxis names one worker function scale.
type WorkerFunctionAxis string

// Worker function axes.
const (
	WFData   WorkerFunctionAxis = "data"
	WFPeople WorkerFunctionAxis = "people"
	WFThings WorkerFunctionAxis = "things"
)

var strengths = map[types.Exertion]Strength{
	types.ExertionSedentary: {
		Level: types.ExertionSedentary, Code: "S", Name: "Sedentary",
		Description:       "Exerting up to 10 pounds of force occasionally (up to 1/3 of the time) and/or a negligible amount of force frequently.",
		LiftOccasionalLbs: 10, LiftFrequentLbs: 0, StandWalkHours: 2, SitHours: 6,
	},
	types.ExertionLight: {
		Level: types.ExertionLight, Code: "L", Name: "Light",
		Description:       "Exerting up to 20 pounds of force occasionally, and/or up to 10 pounds of force frequently.",
		LiftOccasionalLbs: 20, LiftFrequentLbs: 10, StandWalkHours: 6, SitHours: 2,
	},
	types.ExertionMedium: {
		Level: types.ExertionMedium, Code: "M", Name: "Medium",
		Description:       "Exerting 20 to 50 pounds of force occasionally, and/or 10 to 25 pounds of force frequently.",
		LiftOccasionalLbs: 50, LiftFrequentLbs: 25, StandWalkHours: 6, SitHours: 2,
	},
	types.ExertionHeavy: {
		Level: types.ExertionHeavy, Code: "H", Name: "Heavy",
		Description:       "Exerting 50 to 100 pounds of force occasionally, and/or 25 to 50 pounds of force frequently.",
		LiftOccasionalLbs: 100, LiftFrequentLbs: 50, StandWalkHours: 6, SitHours: 2,
	},
	types.ExertionVeryHeavy: {
		Level: types.ExertionVeryHeavy, Code: "V", Name: "Very Heavy",
		Description:       "Exerting in excess of 100 pounds of force occasionally, and/or in excess of 50 pounds of force frequently.",
		LiftOccasionalLbs: 101, LiftFrequentLbs: 51, StandWalkHours: 6, SitHours: 2,
	},
}

var frequencies = map[types.Frequency]FrequencyInfo{
	types.FrequencyNotPresent: {
		Code: "N", Short: "Not Present", Full: "Activity or condition does not exist",
		Percentage: "0% of time", HoursPerDay: "0 hours",
	},
	types.FrequencyOccasionally: {
		Code: "O", Short: "Occasionally", Full: "Activity or condition exists up to 1/3 of the time",
		Percentage: "Up to 33% of time", HoursPerDay: "Up to 2.5 hours in 8-hour day",
	},
	types.FrequencyFrequently: {
		Code: "F", Short: "Frequently", Full: "Activity or condition exists from 1/3 to 2/3 of the time",
		Percentage: "34-66% of time", HoursPerDay: "2.5 to 5.5 hours in 8-hour day",
	},
	types.FrequencyConstantly: {
		Code: "C", Short: "Constantly", Full: "Activity or condition exists 2/3 or more of the time",
		Percentage: "67-100% of time", HoursPerDay: "5.5 to 8 hours in 8-hour day",
	},
}

var svpDescriptions = map[int]string{
	1: "Short demonstration only",
	2: "Anything beyond short demonstration up to 1 month",
	3: "Over 1 month up to 3 months",
	4: "Over 3 months up to 6 months",
	5: "Over 6 months up to 1 year",
	6: "Over 1 year up to 2 years",
	7: "Over 2 years up to 4 years",
	8: "Over 4 years up to 10 years",
	9: "Over 10 years",
}

var gedDescriptions = map[GEDAxis]map[int]string{
	GEDReasoning: {
		1: "Apply commonsense understanding to carry out simple one- or two-step instructions",
		2: "Apply commonsense understanding to carry out detailed but uninvolved instructions",
		3: "Apply commonsense understanding to carry out instructions in written, oral, or diagrammatic form",
		4: "Apply principles of rational systems to solve practical problems",
		5: "Apply principles of logical or scientific thinking to define problems, collect data, establish facts, and draw valid conclusions",
		6: "Apply principles of logical or scientific thinking to a wide range of problems; handle nonverbal symbolism in its most difficult forms",
	},
	GEDMath: {
		1: "Add and subtract two-digit numbers; multiply and divide 10's and 100's; perform basic arithmetic with coins and units",
		2: "Perform arithmetic operations with fractions, decimals, percentages; draw and interpret bar graphs",
		3: "Compute discount, interest; Algebra; Geometry",
		4: "Algebra, Geometry, Shop Math",
		5: "Algebra, Calculus, Statistics",
		6: "Advanced calculus, Modern Algebra, Statistics",
	},
	GEDLanguage: {
		1: "Recognize meaning of 2,500 words; print simple sentences; speak simple sentences",
		2: "Read at a rate of 190-215 words/minute, write compound sentences, speak clearly",
		3: "Read a variety of novels, write reports, speak confidently",
		4: "Read novels, prepare business letters, participate in discussions",
		5: "Read literature, write novels, conversant in effective speaking",
		6: "Same as Level 5",
	},
}

var reasoningNotes = map[int]ReasoningNotes{
	1: {
		CompatibleWith:              []string{"simple 1-2 step instructions", "simple, routine, repetitive tasks"},
		PotentiallyIncompatibleWith: []string{"detailed instructions", "complex tasks", "independent judgment"},
	},
	2: {
		CompatibleWith:              []string{"detailed but uninvolved instructions", "routine work with some variation"},
		PotentiallyIncompatibleWith: []string{"complex instructions", "abstract concepts", "independent judgment"},
	},
	3: {
		CompatibleWith:              []string{"instructions in various forms", "semi-complex tasks", "some independent judgment"},
		PotentiallyIncompatibleWith: []string{"highly complex tasks", "significant abstract reasoning"},
	},
	4: {
		CompatibleWith:              []string{"complex tasks", "abstract concepts", "independent judgment"},
		PotentiallyIncompatibleWith: []string{"severe concentration deficits", "significant memory impairments"},
	},
	5: {
		CompatibleWith:              []string{"advanced reasoning", "complex problem-solving", "high-level abstract thinking"},
		PotentiallyIncompatibleWith: []string{"most mental RFC limitations"},
	},
	6: {
		CompatibleWith:              []string{"highest level reasoning", "scientific thinking", "advanced symbolism"},
		PotentiallyIncompatibleWith: []string{"most mental RFC limitations"},
	},
}

var workerFunctions = map[WorkerFunctionAxis]map[int]string{
	WFData: {
		0: "Synthesizing: Integrating analyses of data to discover facts and/or develop knowledge concepts or interpretations",
		1: "Coordinating: Determining time, place, and sequence of operations or action to be taken on the basis of analysis of data",
		2: "Analyzing: Examining and evaluating data. Presenting alternative actions in relation to the evaluation",
		3: "Compiling: Gathering, collating, or classifying information about data, people, or things",
		4: "Computing: Performing arithmetic operations and reporting on and/or carrying out prescribed actions",
		5: "Copying: Transcribing, entering, or posting data",
		6: "Comparing: Judging the readily observable functional, structural, or compositional characteristics",
		7: "No significant relationship: The worker has no significant relationship with data",
		8: "Taking Instructions-Helping: Helping applies to non-learning helpers",
	},
	WFPeople: {
		0: "Mentoring: Dealing with individuals in terms of their total personality to advise, counsel, and/or guide them",
		1: "Negotiating: Exchanging ideas, information, and opinions with others to formulate policies and programs",
		2: "Instructing: Teaching subject matter to others, or training others through explanation and demonstration",
		3: "Supervising: Determining or interpreting work procedures for a group of workers",
		4: "Diverting: Amusing others, usually through the medium of stage, screen, television, or radio",
		5: "Persuading: Influencing others in favor of a product, service, or point of view",
		6: "Speaking-Signaling: Talking with and/or signaling people to convey or exchange information",
		7: "Serving: Attending to the needs or requests of people or animals",
		8: "No significant relationship: The worker has no significant relationship with people",
	},
	WFThings: {
		0: "Setting Up: Adjusting machines or equipment by replacing or altering tools, jigs, fixtures, and attachments",
		1: "Precision Working: Using body members and/or tools or work aids to work, move, guide, or place objects or materials",
		2: "Operating-Controlling: Starting, stopping, controlling, and adjusting the progress of machines or equipment",
		3: "Driving-Operating: Starting, stopping, and controlling the actions of machines or equipment for which a course must be steered",
		4: "Manipulating: Using body members, tools, or special devices to work, move, guide, or place objects or materials",
		5: "Tending: Starting, stopping, and observing the functioning of machines and equipment",
		6: "Feeding-Offbearing: Inserting, throwing, dumping, or placing materials in or removing them from machines",
		7: "Handling: Using body members, handtools, and/or special devices to work, move, or carry objects or materials",
		8: "No significant relationship: The worker has no significant relationship with things",
	},
}

var temperaments = map[string]TemperamentInfo{
	"D": {Code: "D", Description: "Directing: Controlling or planning activities", Considerations: "May be incompatible with limitations on decision-making, planning, organizing"},
	"R": {Code: "R", Description: "Repetitive: Performing repetitive or short cycle work", Considerations: "Often compatible with limitations to simple, routine tasks"},
	"I": {Code: "I", Description: "Influencing: Influencing people's opinions, attitudes, judgments", Considerations: "May be incompatible with social interaction limitations"},
	"V": {Code: "V", Description: "Variety: Performing a variety of work", Considerations: "May be incompatible with limitations to simple, routine tasks"},
	"E": {Code: "E", Description: "Expressing: Expressing personal feelings", Considerations: "May be incompatible with social interaction limitations"},
	"A": {Code: "A", Description: "Alone: Working alone or apart in physical isolation", Considerations: "May be compatible with social interaction limitations"},
	"S": {Code: "S", Description: "Stress: Performing under stress", Considerations: "Often incompatible with stress limitations"},
	"T": {Code: "T", Description: "Tolerances: Attaining precise set limits, tolerances, standards", Considerations: "May be incompatible with concentration limitations"},
	"U": {Code: "U", Description: "Instructions: Working under specific instructions", Considerations: "Often compatible with limitations to simple, routine tasks"},
	"P": {Code: "P", Description: "People: Dealing with people", Considerations: "May be incompatible with social interaction limitations"},
	"J": {Code: "J", Description: "Judgments: Making judgments and decisions", Considerations: "May be incompatible with limitations on decision-making"},
}

var aptitudes = []Aptitude{
	{Code: "G", Column: "AptGenLearn", Name: "General Learning Ability"},
	{Code: "V", Column: "AptVerbal", Name: "Verbal"},
	{Code: "N", Column: "AptNumerical", Name: "Numerical"},
	{Code: "S", Column: "AptSpacial", Name: "Spatial"},
	{Code: "P", Column: "AptFormPer", Name: "Form Perception"},
	{Code: "Q", Column: "AptClericalPer", Name: "Clerical Perception"},
	{Code: "K", Column: "AptMotor", Name: "Motor Coordination"},
	{Code: "F", Column: "AptFingerDext", Name: "Finger Dexterity"},
	{Code: "M", Column: "AptManualDext", Name: "Manual Dexterity"},
	{Code: "E", Column: "AptEyeHandCoord", Name: "Eye/Hand/Foot Coordination"},
	{Code: "C", Column: "AptColorDisc", Name: "Color Discrimination"},
}

var aptitudeLevels = map[int]AptitudeLevel{
	1: {Description: "Superior", Percentile: "Top 10% (90th percentile and above)"},
	2: {Description: "Above Average", Percentile: "Top third excluding the top 10% (67th to 89th percentile)"},
	3: {Description: "Average", Percentile: "Middle third (34th to 66th percentile)"},
	4: {Description: "Below Average", Percentile: "Lowest third excluding bottom 10% (11th to 33rd percentile)"},
	5: {Description: "Minimal Ability/Unable to Perform", Percentile: "Lowest 10% (10th percentile and below)"},
}

var noiseLevels = map[int]NoiseInfo{
	1: {Name: "Very Quiet", Description: "Very quiet environment such as a private office with no machinery, isolation booth for hearing tests"},
	2: {Name: "Quiet", Description: "Quiet environment such as a library, many private offices, funeral reception area, light traffic"},
	3: {Name: "Moderate", Description: "Moderate noise such as business office with typewriters/computers, light traffic, department store"},
	4: {Name: "Loud", Description: "Loud noise such as heavy traffic, factory areas with noisy machines"},
	5: {Name: "Very Loud", Description: "Very loud noise such as in a boiler room, near a jackhammer or jet engine"},
}

var physicalDemands = []DemandField{
	{Column: "ClimbingNum", Label: "Climbing", Description: "Ascending or descending ladders, stairs, scaffolding, ramps, poles and the like, using feet and legs and/or hands and arms"},
	{Column: "BalancingNum", Label: "Balancing", Description: "Maintaining body equilibrium to prevent falling and walking, standing or crouching on narrow, slippery, or moving surfaces"},
	{Column: "StoopingNum", Label: "Stooping", Description: "Bending body downward and forward by bending spine at the waist"},
	{Column: "KneelingNum", Label: "Kneeling", Description: "Bending legs at knee to come to a rest on knee or knees"},
	{Column: "CrouchingNum", Label: "Crouching", Description: "Bending the body downward and forward by bending leg and spine"},
	{Column: "CrawlingNum", Label: "Crawling", Description: "Moving about on hands and knees or hands and feet"},
	{Column: "ReachingNum", Label: "Reaching", Description: "Extending hand(s) and arm(s) in any direction"},
	{Column: "HandlingNum", Label: "Handling", Description: "Seizing, holding, grasping, turning, or otherwise working with hand or hands"},
	{Column: "FingeringNum", Label: "Fingering", Description: "Picking, pinching, typing or otherwise working primarily with fingers rather than with the whole hand as in handling"},
	{Column: "FeelingNum", Label: "Feeling", Description: "Perceiving attributes of objects, such as size, shape, temperature or texture by touching with skin"},
	{Column: "TalkingNum", Label: "Talking", Description: "Expressing or exchanging ideas by means of the spoken word"},
	{Column: "HearingNum", Label: "Hearing", Description: "Perceiving the nature of sounds at normal speaking levels with or without correction"},
	{Column: "TastingNum", Label: "Taste/Smell", Description: "Distinguishing, with the aid of tongue and/or nose, the qualities of chemicals by taste or odor"},
	{Column: "NearAcuityNum", Label: "Near Acuity", Description: "Clarity of vision at 20 inches or less"},
	{Column: "FarAcuityNum", Label: "Far Acuity", Description: "Clarity of vision at 20 feet or more"},
	{Column: "DepthNum", Label: "Depth Perception", Description: "Three-dimensional vision; ability to judge distances and spatial relationships"},
	{Column: "AccommodationNum", Label: "Accommodation", Description: "Adjustment of eye to bring an object into sharp focus"},
	{Column: "ColorVisionNum", Label: "Color Vision", Description: "Ability to identify and distinguish colors"},
	{Column: "FieldVisionNum", Label: "Field of Vision", Description: "Observing an area that can be seen up and down or right to left while eyes are fixed on a given point"},
}

// NoiseColumn holds the numeric 1-5 noise level rather than a frequency.
const NoiseColumn = "NoiseNum"

var environmentalConditions = []DemandField{
	{Column: "WeatherNum", Label: "Weather", Description: "Exposure to outside atmospheric conditions"},
	{Column: "ColdNum", Label: "Extreme Cold", Description: "Exposure to non-weather-related cold temperatures"},
	{Column: "HeatNum", Label: "Extreme Heat", Description: "Exposure to non-weather-related hot temperatures"},
	{Column: "WetNum", Label: "Wet/Humid", Description: "Contact with water or other liquids or exposure to non-weather-related humid conditions"},
	{Column: "VibrationNum", Label: "Vibration", Description: "Exposure to oscillating movements of the extremities or whole body"},
	{Column: "AtmosphereNum", Label: "Atmospheric Conditions", Description: "Exposure to conditions such as fumes, noxious odors, dusts, mists, gases, and poor ventilation"},
	{Column: "MovingNum", Label: "Moving Mechanical Parts", Description: "Exposure to possible bodily injury from moving mechanical parts of equipment, tools, or machinery"},
	{Column: "ElectricityNum", Label: "Electric Shock", Description: "Exposure to possible bodily injury from electrical shock"},
	{Column: "HeightNum", Label: "High Places", Description: "Exposure to possible bodily injury from falling"},
	{Column: "RadiationNum", Label: "Radiation", Description: "Exposure to possible bodily injury from radiation"},
	{Column: "ExplosionNum", Label: "Explosives", Description: "Exposure to possible injury from explosions"},
	{Column: "ToxicNum", Label: "Toxic/Caustic Chemicals", Description: "Exposure to possible bodily injury from toxic or caustic chemicals"},
	{Column: "OtherNum", Label: "Other Conditions", Description: "Exposure to conditions other than those listed"},
}
