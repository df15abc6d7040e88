package inmemdb

import (
	"time"

	"github.com/kanisa-app/kanisa/core/activity"
	"github.com/kanisa-app/kanisa/core/course"
	"github.com/kanisa-app/kanisa/core/leaderboard"
	"github.com/kanisa-app/kanisa/core/quiz"
	"github.com/kanisa-app/kanisa/core/user"
)

// seed loads the demo dataset: a small church learning catalog with its
// members, scores and recent activity.
func (db *DB) seed() {
	now := time.Now().UTC()

	for i := range seedUsers {
		usr := seedUsers[i]
		usr.CreatedAt = now
		usr.UpdatedAt = now
		db.users[usr.ID] = &usr
	}

	for i := range seedCourses {
		c := seedCourses[i]
		db.courses[c.ID] = &c
		db.courseOrder = append(db.courseOrder, c.ID)
	}

	db.entries = append(db.entries, seedLeaderboard...)

	db.activities = []activity.Activity{
		{ID: "a1", Type: activity.TypeLessonCompleted, Title: `Completed "The Trinity Explained"`, Timestamp: now.Add(-2 * time.Hour), CourseID: "1"},
		{ID: "a2", Type: activity.TypeCourseEnrolled, Title: `Enrolled in "Bible Study Methods"`, Timestamp: now.Add(-24 * time.Hour), CourseID: "2"},
		{ID: "a3", Type: activity.TypeQuizTaken, Title: `Took "Servant Leadership Quiz"`, Timestamp: now.Add(-3 * 24 * time.Hour), CourseID: "3"},
		{ID: "a4", Type: activity.TypeCourseCompleted, Title: `Completed "Servant Leadership"`, Timestamp: now.Add(-3 * 24 * time.Hour), CourseID: "3"},
	}
}

var seedUsers = []user.User{
	{
		ID:                 "1",
		Name:               "John Doe",
		Email:              "john@church.org",
		Role:               user.RoleUser,
		EnrolledCourseIDs:  []string{"1", "2"},
		CompletedCourseIDs: []string{"3"},
		QuizzesTaken:       5,
	},
	{
		ID:                 "2",
		Name:               "Sarah Johnson",
		Email:              "sarah@church.org",
		Role:               user.RoleVolunteer,
		EnrolledCourseIDs:  []string{"1", "4"},
		CompletedCourseIDs: []string{"2"},
		QuizzesTaken:       8,
	},
	{
		ID:                 "3",
		Name:               "Pastor Michael",
		Email:              "michael@church.org",
		Role:               user.RoleAdmin,
		EnrolledCourseIDs:  []string{},
		CompletedCourseIDs: []string{},
		QuizzesTaken:       0,
	},
}

var seedCourses = []course.Course{
	{
		ID:               "1",
		Title:            "Foundations of Faith",
		Description:      "Explore the core beliefs and doctrines that form the foundation of the Christian faith. This comprehensive course covers essential topics from Scripture, theology, and practical application for daily living.",
		ShortDescription: "Discover the core beliefs of Christianity",
		Thumbnail:        "https://images.unsplash.com/photo-1504052434569-70ad5836ab65?w=400&h=250&fit=crop",
		Instructor:       "Pastor Michael",
		Duration:         "4 weeks",
		VolunteerOnly:    false,
		Published:        true,
		EnrolledCount:    156,
		Lessons: []course.Lesson{
			{ID: "l1", Title: "Understanding God's Nature", Duration: "25:00", VideoURL: "#", Completed: true, Order: 1},
			{ID: "l2", Title: "The Trinity Explained", Duration: "30:00", VideoURL: "#", Completed: true, Order: 2},
			{ID: "l3", Title: "Jesus Christ: Son of God", Duration: "28:00", VideoURL: "#", Completed: false, Order: 3},
			{ID: "l4", Title: "The Holy Spirit's Role", Duration: "22:00", VideoURL: "#", Completed: false, Order: 4},
			{ID: "l5", Title: "Salvation and Grace", Duration: "35:00", VideoURL: "#", Completed: false, Order: 5},
			{ID: "l6", Title: "The Church Community", Duration: "20:00", VideoURL: "#", Completed: false, Order: 6},
			{ID: "l7", Title: "Prayer and Worship", Duration: "25:00", VideoURL: "#", Completed: false, Order: 7},
			{ID: "l8", Title: "Living Out Your Faith", Duration: "30:00", VideoURL: "#", Completed: false, Order: 8},
		},
		Materials: []course.Material{
			{ID: "m1", Title: "Study Guide - Week 1", Type: course.MaterialPDF, URL: "#"},
			{ID: "m2", Title: "Scripture References", Type: course.MaterialDocument, URL: "#"},
			{ID: "m3", Title: "Presentation Slides", Type: course.MaterialSlide, URL: "#"},
		},
		Quiz: &quiz.Quiz{
			ID:           "q1",
			Title:        "Foundations of Faith Quiz",
			PassingScore: 70,
			Questions: []quiz.Question{
				{ID: "qq1", Text: "What is the Trinity?", Options: []string{"Three separate Gods", "One God in three persons", "A council of angels", "A metaphor"}, CorrectOption: 1},
				{ID: "qq2", Text: "What does grace mean?", Options: []string{"Earning salvation", "Unmerited favor from God", "A type of prayer", "Church membership"}, CorrectOption: 1},
				{ID: "qq3", Text: "Who is the Holy Spirit?", Options: []string{"An angel", "A force", "Third person of the Trinity", "A prophet"}, CorrectOption: 2},
				{ID: "qq4", Text: "What is salvation?", Options: []string{"Being good enough", "Church attendance", "Deliverance from sin through Christ", "Following rules"}, CorrectOption: 2},
				{ID: "qq5", Text: "Why is prayer important?", Options: []string{"It's optional", "Communication with God", "Only for leaders", "Just tradition"}, CorrectOption: 1},
			},
		},
	},
	{
		ID:               "2",
		Title:            "Bible Study Methods",
		Description:      "Learn effective techniques for studying and understanding the Bible. From inductive study to word studies, this course will transform how you engage with Scripture.",
		ShortDescription: "Master the art of Bible study",
		Thumbnail:        "https://images.unsplash.com/photo-1507842217343-583bb7270b66?w=400&h=250&fit=crop",
		Instructor:       "Dr. Emily Carter",
		Duration:         "3 weeks",
		VolunteerOnly:    false,
		Published:        true,
		EnrolledCount:    234,
		Lessons: []course.Lesson{
			{ID: "l9", Title: "Observation: What Does It Say?", Duration: "30:00", VideoURL: "#", Completed: false, Order: 1},
			{ID: "l10", Title: "Interpretation: What Does It Mean?", Duration: "35:00", VideoURL: "#", Completed: false, Order: 2},
			{ID: "l11", Title: "Application: How Does It Apply?", Duration: "25:00", VideoURL: "#", Completed: false, Order: 3},
			{ID: "l12", Title: "Word Studies Deep Dive", Duration: "40:00", VideoURL: "#", Completed: false, Order: 4},
			{ID: "l13", Title: "Context is King", Duration: "28:00", VideoURL: "#", Completed: false, Order: 5},
			{ID: "l14", Title: "Putting It All Together", Duration: "35:00", VideoURL: "#", Completed: false, Order: 6},
		},
		Materials: []course.Material{
			{ID: "m4", Title: "Study Method Worksheets", Type: course.MaterialPDF, URL: "#"},
			{ID: "m5", Title: "Recommended Resources", Type: course.MaterialDocument, URL: "#"},
		},
		Quiz: &quiz.Quiz{
			ID:           "q2",
			Title:        "Bible Study Methods Quiz",
			PassingScore: 70,
			Questions: []quiz.Question{
				{ID: "qq6", Text: "What are the three steps of inductive Bible study?", Options: []string{"Read, Pray, Share", "Observation, Interpretation, Application", "Listen, Learn, Teach", "Study, Memorize, Recite"}, CorrectOption: 1},
				{ID: "qq7", Text: "Why is context important?", Options: []string{"It's not important", "Prevents misinterpretation", "Only for scholars", "Makes reading faster"}, CorrectOption: 1},
			},
		},
	},
	{
		ID:               "3",
		Title:            "Servant Leadership",
		Description:      "Develop leadership skills rooted in biblical principles. Learn how to lead like Jesus through service, humility, and integrity.",
		ShortDescription: "Lead with a servant's heart",
		Thumbnail:        "https://images.unsplash.com/photo-1517486808906-6ca8b3f04846?w=400&h=250&fit=crop",
		Instructor:       "Pastor David Lee",
		Duration:         "5 weeks",
		VolunteerOnly:    true,
		Published:        true,
		EnrolledCount:    89,
		Lessons: []course.Lesson{
			{ID: "l15", Title: "What is Servant Leadership?", Duration: "25:00", VideoURL: "#", Completed: true, Order: 1},
			{ID: "l16", Title: "Jesus as the Model Leader", Duration: "30:00", VideoURL: "#", Completed: true, Order: 2},
			{ID: "l17", Title: "Humility in Leadership", Duration: "28:00", VideoURL: "#", Completed: true, Order: 3},
			{ID: "l18", Title: "Building Team Trust", Duration: "32:00", VideoURL: "#", Completed: true, Order: 4},
			{ID: "l19", Title: "Effective Communication", Duration: "25:00", VideoURL: "#", Completed: true, Order: 5},
			{ID: "l20", Title: "Conflict Resolution", Duration: "30:00", VideoURL: "#", Completed: true, Order: 6},
			{ID: "l21", Title: "Empowering Others", Duration: "28:00", VideoURL: "#", Completed: true, Order: 7},
			{ID: "l22", Title: "Vision and Direction", Duration: "35:00", VideoURL: "#", Completed: true, Order: 8},
			{ID: "l23", Title: "Accountability Matters", Duration: "22:00", VideoURL: "#", Completed: true, Order: 9},
			{ID: "l24", Title: "Legacy of Leadership", Duration: "30:00", VideoURL: "#", Completed: true, Order: 10},
		},
		Materials: []course.Material{
			{ID: "m6", Title: "Leadership Assessment", Type: course.MaterialPDF, URL: "#"},
			{ID: "m7", Title: "Action Plan Template", Type: course.MaterialDocument, URL: "#"},
			{ID: "m8", Title: "Case Studies", Type: course.MaterialPDF, URL: "#"},
		},
		Quiz: &quiz.Quiz{
			ID:           "q3",
			Title:        "Servant Leadership Quiz",
			PassingScore: 75,
			Questions: []quiz.Question{
				{ID: "qq8", Text: "What is the primary characteristic of servant leadership?", Options: []string{"Authority", "Humility and service", "Control", "Recognition"}, CorrectOption: 1},
				{ID: "qq9", Text: "How did Jesus demonstrate servant leadership?", Options: []string{"By ruling with power", "By washing disciples' feet", "By demanding respect", "By avoiding conflict"}, CorrectOption: 1},
				{ID: "qq10", Text: "What builds trust in a team?", Options: []string{"Secrecy", "Consistency and integrity", "Competition", "Distance"}, CorrectOption: 1},
			},
		},
	},
	{
		ID:               "4",
		Title:            "Youth Ministry Essentials",
		Description:      "Comprehensive training for youth ministry volunteers covering mentorship, program planning, and engaging with teenagers.",
		ShortDescription: "Equip yourself for youth ministry",
		Thumbnail:        "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=400&h=250&fit=crop",
		Instructor:       "Rebecca Thomas",
		Duration:         "4 weeks",
		VolunteerOnly:    true,
		Published:        true,
		EnrolledCount:    67,
		Lessons: []course.Lesson{
			{ID: "l25", Title: "Understanding Teenagers Today", Duration: "35:00", VideoURL: "#", Completed: false, Order: 1},
			{ID: "l26", Title: "Building Meaningful Relationships", Duration: "30:00", VideoURL: "#", Completed: false, Order: 2},
			{ID: "l27", Title: "Creating Safe Environments", Duration: "25:00", VideoURL: "#", Completed: false, Order: 3},
			{ID: "l28", Title: "Engaging Teaching Methods", Duration: "32:00", VideoURL: "#", Completed: false, Order: 4},
			{ID: "l29", Title: "Small Group Leadership", Duration: "28:00", VideoURL: "#", Completed: false, Order: 5},
			{ID: "l30", Title: "Event Planning Basics", Duration: "30:00", VideoURL: "#", Completed: false, Order: 6},
			{ID: "l31", Title: "Partnering with Parents", Duration: "25:00", VideoURL: "#", Completed: false, Order: 7},
			{ID: "l32", Title: "Self-Care for Volunteers", Duration: "20:00", VideoURL: "#", Completed: false, Order: 8},
		},
		Materials: []course.Material{
			{ID: "m9", Title: "Youth Ministry Handbook", Type: course.MaterialPDF, URL: "#"},
			{ID: "m10", Title: "Game Ideas Collection", Type: course.MaterialDocument, URL: "#"},
		},
		Quiz: &quiz.Quiz{
			ID:           "q4",
			Title:        "Youth Ministry Quiz",
			PassingScore: 70,
			Questions: []quiz.Question{
				{ID: "qq11", Text: "What is most important in youth ministry?", Options: []string{"Cool programs", "Building relationships", "Having answers", "Entertainment"}, CorrectOption: 1},
				{ID: "qq12", Text: "Why is a safe environment important?", Options: []string{"Legal requirement only", "Teens can be vulnerable", "Not really important", "For parents' peace"}, CorrectOption: 1},
			},
		},
	},
	{
		ID:               "5",
		Title:            "Spiritual Disciplines",
		Description:      "Deepen your faith through the practice of spiritual disciplines including prayer, fasting, meditation, and solitude.",
		ShortDescription: "Grow deeper in your faith journey",
		Thumbnail:        "https://images.unsplash.com/photo-1476234251651-f353703a034d?w=400&h=250&fit=crop",
		Instructor:       "Sister Grace",
		Duration:         "6 weeks",
		VolunteerOnly:    false,
		Published:        true,
		EnrolledCount:    312,
		Lessons: []course.Lesson{
			{ID: "l33", Title: "Introduction to Spiritual Disciplines", Duration: "20:00", VideoURL: "#", Completed: false, Order: 1},
			{ID: "l34", Title: "The Practice of Prayer", Duration: "30:00", VideoURL: "#", Completed: false, Order: 2},
			{ID: "l35", Title: "Fasting with Purpose", Duration: "25:00", VideoURL: "#", Completed: false, Order: 3},
			{ID: "l36", Title: "Meditation on Scripture", Duration: "28:00", VideoURL: "#", Completed: false, Order: 4},
			{ID: "l37", Title: "The Gift of Solitude", Duration: "22:00", VideoURL: "#", Completed: false, Order: 5},
			{ID: "l38", Title: "Journaling Your Journey", Duration: "20:00", VideoURL: "#", Completed: false, Order: 6},
			{ID: "l39", Title: "Sabbath Rest", Duration: "25:00", VideoURL: "#", Completed: false, Order: 7},
			{ID: "l40", Title: "Worship as a Lifestyle", Duration: "30:00", VideoURL: "#", Completed: false, Order: 8},
			{ID: "l41", Title: "Service and Generosity", Duration: "28:00", VideoURL: "#", Completed: false, Order: 9},
			{ID: "l42", Title: "Community and Fellowship", Duration: "25:00", VideoURL: "#", Completed: false, Order: 10},
			{ID: "l43", Title: "Simplicity and Contentment", Duration: "22:00", VideoURL: "#", Completed: false, Order: 11},
			{ID: "l44", Title: "Integrating Disciplines", Duration: "30:00", VideoURL: "#", Completed: false, Order: 12},
		},
		Materials: []course.Material{
			{ID: "m11", Title: "Spiritual Disciplines Journal", Type: course.MaterialPDF, URL: "#"},
			{ID: "m12", Title: "Prayer Guide", Type: course.MaterialDocument, URL: "#"},
			{ID: "m13", Title: "Meditation Exercises", Type: course.MaterialPDF, URL: "#"},
		},
		Quiz: &quiz.Quiz{
			ID:           "q5",
			Title:        "Spiritual Disciplines Quiz",
			PassingScore: 70,
			Questions: []quiz.Question{
				{ID: "qq13", Text: "What is the purpose of spiritual disciplines?", Options: []string{"Earning God's favor", "Growing closer to God", "Impressing others", "Following rules"}, CorrectOption: 1},
				{ID: "qq14", Text: "What is biblical meditation?", Options: []string{"Emptying the mind", "Focusing on Scripture", "A form of yoga", "Just relaxation"}, CorrectOption: 1},
			},
		},
	},
}

// seedLeaderboard ranks are advisory; rankings are recomputed on read.
var seedLeaderboard = []leaderboard.Entry{
	{UserID: "10", UserName: "David Kim", Score: 100, Rank: 1, QuizID: "q1"},
	{UserID: "11", UserName: "Maria Garcia", Score: 95, Rank: 2, QuizID: "q1"},
	{UserID: "12", UserName: "James Wilson", Score: 90, Rank: 3, QuizID: "q1"},
	{UserID: "13", UserName: "Emma Davis", Score: 85, Rank: 4, QuizID: "q1"},
	{UserID: "14", UserName: "Michael Brown", Score: 80, Rank: 5, QuizID: "q1"},
	{UserID: "1", UserName: "John Doe", Score: 75, Rank: 6, QuizID: "q1"},
	{UserID: "15", UserName: "Sarah Lee", Score: 98, Rank: 1, QuizID: "q2"},
	{UserID: "16", UserName: "Tom Harris", Score: 92, Rank: 2, QuizID: "q2"},
	{UserID: "17", UserName: "Lisa Chen", Score: 88, Rank: 3, QuizID: "q2"},
	{UserID: "18", UserName: "Robert Taylor", Score: 85, Rank: 4, QuizID: "q2"},
	{UserID: "19", UserName: "Jennifer White", Score: 82, Rank: 5, QuizID: "q2"},
}
