package schema

// All catalog templates supported.
const (
	FrontDoubleBiceps TemplateID = "front-double-biceps"
	FrontLatSpread    TemplateID = "front-lat-spread"
	SideChest         TemplateID = "side-chest"
	BackDoubleBiceps  TemplateID = "back-double-biceps"
	MostMuscular      TemplateID = "most-muscular"
)

// fullBodyTemplates are the poses whose reference targets span hips and
// knees, qualifying them for the lower-body framing hint.
var fullBodyTemplates = map[TemplateID]struct{}{
	FrontDoubleBiceps: {},
	FrontLatSpread:    {},
}

// IsFullBody reports whether a template expects the whole body in frame.
func IsFullBody(id TemplateID) bool {
	_, ok := fullBodyTemplates[id]
	return ok
}

// catalog is the embedded, versionless set of reference poses. It is never
// loaded from external storage at runtime and must stay read-only.
var catalog = []*PoseTemplate{
	{
		ID:          FrontDoubleBiceps,
		Name:        "Front Double Biceps",
		Description: "Face the camera, raise both fists to ear height and flex.",
		ImageRef:    "poses/front-double-biceps.svg",
		Parts: []BodyPart{
			Nose,
			LeftShoulder, RightShoulder,
			LeftElbow, RightElbow,
			LeftWrist, RightWrist,
			LeftHip, RightHip,
			LeftKnee, RightKnee,
			LeftAnkle, RightAnkle,
		},
		Keypoints: map[BodyPart]TemplatePoint{
			Nose:          {X: 0.50, Y: 0.12},
			LeftShoulder:  {X: 0.38, Y: 0.28},
			RightShoulder: {X: 0.62, Y: 0.28},
			LeftElbow:     {X: 0.22, Y: 0.26},
			RightElbow:    {X: 0.78, Y: 0.26},
			LeftWrist:     {X: 0.26, Y: 0.12},
			RightWrist:    {X: 0.74, Y: 0.12},
			LeftHip:       {X: 0.42, Y: 0.55},
			RightHip:      {X: 0.58, Y: 0.55},
			LeftKnee:      {X: 0.41, Y: 0.75},
			RightKnee:     {X: 0.59, Y: 0.75},
			LeftAnkle:     {X: 0.40, Y: 0.93},
			RightAnkle:    {X: 0.60, Y: 0.93},
		},
	},
	{
		ID:          FrontLatSpread,
		Name:        "Front Lat Spread",
		Description: "Fists on hips, elbows flared wide to spread the lats.",
		ImageRef:    "poses/front-lat-spread.svg",
		Parts: []BodyPart{
			Nose,
			LeftShoulder, RightShoulder,
			LeftElbow, RightElbow,
			LeftWrist, RightWrist,
			LeftHip, RightHip,
			LeftKnee, RightKnee,
			LeftAnkle, RightAnkle,
		},
		Keypoints: map[BodyPart]TemplatePoint{
			Nose:          {X: 0.50, Y: 0.10},
			LeftShoulder:  {X: 0.35, Y: 0.26},
			RightShoulder: {X: 0.65, Y: 0.26},
			LeftElbow:     {X: 0.18, Y: 0.38},
			RightElbow:    {X: 0.82, Y: 0.38},
			LeftWrist:     {X: 0.36, Y: 0.46},
			RightWrist:    {X: 0.64, Y: 0.46},
			LeftHip:       {X: 0.43, Y: 0.55},
			RightHip:      {X: 0.57, Y: 0.55},
			LeftKnee:      {X: 0.42, Y: 0.75},
			RightKnee:     {X: 0.58, Y: 0.75},
			LeftAnkle:     {X: 0.41, Y: 0.93},
			RightAnkle:    {X: 0.59, Y: 0.93},
		},
	},
	{
		ID:          SideChest,
		Name:        "Side Chest",
		Description: "Side-on stance, front arm pressed across the chest.",
		ImageRef:    "poses/side-chest.svg",
		Parts: []BodyPart{
			Nose,
			LeftShoulder, RightShoulder,
			LeftElbow, RightElbow,
			LeftWrist, RightWrist,
			LeftHip, RightHip,
		},
		Keypoints: map[BodyPart]TemplatePoint{
			Nose:          {X: 0.46, Y: 0.14},
			LeftShoulder:  {X: 0.40, Y: 0.30},
			RightShoulder: {X: 0.55, Y: 0.28},
			LeftElbow:     {X: 0.35, Y: 0.45},
			RightElbow:    {X: 0.62, Y: 0.44},
			LeftWrist:     {X: 0.48, Y: 0.52},
			RightWrist:    {X: 0.50, Y: 0.55},
			LeftHip:       {X: 0.45, Y: 0.62},
			RightHip:      {X: 0.55, Y: 0.62},
		},
	},
	{
		ID:          BackDoubleBiceps,
		Name:        "Back Double Biceps",
		Description: "Back to the camera, elbows level with the shoulders.",
		ImageRef:    "poses/back-double-biceps.svg",
		Parts: []BodyPart{
			LeftEar, RightEar,
			LeftShoulder, RightShoulder,
			LeftElbow, RightElbow,
			LeftWrist, RightWrist,
			LeftHip, RightHip,
		},
		Keypoints: map[BodyPart]TemplatePoint{
			LeftEar:       {X: 0.45, Y: 0.10},
			RightEar:      {X: 0.55, Y: 0.10},
			LeftShoulder:  {X: 0.37, Y: 0.27},
			RightShoulder: {X: 0.63, Y: 0.27},
			LeftElbow:     {X: 0.20, Y: 0.24},
			RightElbow:    {X: 0.80, Y: 0.24},
			LeftWrist:     {X: 0.27, Y: 0.11},
			RightWrist:    {X: 0.73, Y: 0.11},
			LeftHip:       {X: 0.42, Y: 0.56},
			RightHip:      {X: 0.58, Y: 0.56},
		},
	},
	{
		ID:          MostMuscular,
		Name:        "Most Muscular",
		Description: "Shoulders rolled forward, arms crunched in front of the chest.",
		ImageRef:    "poses/most-muscular.svg",
		Parts: []BodyPart{
			Nose,
			LeftShoulder, RightShoulder,
			LeftElbow, RightElbow,
			LeftWrist, RightWrist,
			LeftHip, RightHip,
		},
		Keypoints: map[BodyPart]TemplatePoint{
			Nose:          {X: 0.50, Y: 0.16},
			LeftShoulder:  {X: 0.36, Y: 0.30},
			RightShoulder: {X: 0.64, Y: 0.30},
			LeftElbow:     {X: 0.30, Y: 0.48},
			RightElbow:    {X: 0.70, Y: 0.48},
			LeftWrist:     {X: 0.44, Y: 0.58},
			RightWrist:    {X: 0.56, Y: 0.58},
			LeftHip:       {X: 0.43, Y: 0.62},
			RightHip:      {X: 0.57, Y: 0.62},
		},
	},
}

// Catalog returns the full reference pose catalog in declaration order.
// Callers must treat the returned templates as read-only.
func Catalog() []*PoseTemplate {
	return catalog
}

// TemplateByID looks up a catalog template.
func TemplateByID(id TemplateID) (*PoseTemplate, bool) {
	for _, tpl := range catalog {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return nil, false
}

// AllTemplateIDs returns the catalog ids in declaration order.
func AllTemplateIDs() []TemplateID {
	ids := make([]TemplateID, 0, len(catalog))
	for _, tpl := range catalog {
		ids = append(ids, tpl.ID)
	}
	return ids
}
