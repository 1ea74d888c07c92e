package plan

// Institutional boilerplate printed on every exported course learning
// plan. Sourced from the University of La Salette templates.

const (
	universityName    = "UNIVERSITY OF LA SALETTE, INC."
	universityAddress = "Santiago City, Isabela, Philippines"
	collegeName       = "COLLEGE OF INFORMATION TECHNOLOGY"
	documentTitle     = "COURSE LEARNING PLAN"
	defaultTermLine   = "Second Semester, Academic Year 2024-2025"

	deanName      = "RAMONSITO B. ADDUCUL, DIT"
	deanTitle     = "Dean, College of Information Technology"
	vpName        = "MADEILYN B. ESTACIO, Ph.D."
	vpTitle       = "Vice President for Academic Affairs"
	defaultAuthor = "BIENVENIDO B. ABAD, JR, DIT"

	visionText = `The University of La Salette, Inc., a Catholic institution founded by the Missionaries of Our Lady of La Salette, forms RECONCILERS "so that they may have life, and have it to the full." (John 10:10)`

	missionText = "The University of La Salette, Inc. is a premier institution of choice, providing accessible, quality, and transformative education for integral human development particularly the poor."

	defaultUnits        = "3 units (2 units Lecture/ 1 unit Laboratory)"
	defaultContactHours = "5 hours per week (2 hours Lecture/ 3 hours Laboratory)"
	defaultCourseType   = "Lecture / Laboratory"
)

var coreValues = []string{
	"1. FAITH-The total submission to God's call to Holiness to His will",
	"2. RECONCILIATION-Constantly renewing our relationship with God, others and all creation through a life of prayer, penance and zeal",
	"3. INTEGRITY-The courage and determination to live and to die for Salettinian ideals",
	"4. EXCELLENCE – Upholding the highest standard of quality education and professionalism in the areas of instruction, research and extension",
	"5. SOLIDARITY – Commitment to building a community anchored on mutual trust, confidence, teamwork, unity and respect for the dignity of the human person and creation",
}

var coreCompetencies = []string{
	"• Researched-Based Oriented Learning",
	"• ICT-Integrated Learning",
	"• Industry-Based Oriented Learning",
	"• Oriented Toward Transformative Learning",
	"• Oriented Toward Integrative Learning",
}

var institutionalObjectives = []string{
	"1. To foster a reconciled and reconciling community through spiritual upliftment programs and liturgical activities.",
	"2. To sustain the quality assured education of the university through institutional and program accreditations, professional certification, and compliance with international standards for curricular programs and university management.",
	"3. To provide accessible education through various modalities of learning.",
	"4. To lead the academic community with strategic and transformative competencies in realizing the Vision, Mission and La Salette Philosophy of Education.",
	"5. To develop and implement transformative teaching and learning experience through critical approach and values-based integration.",
	"6. To undertake research on various disciplines and generate new knowledge needed for the advancement of the university as well as for the national development.",
	"7. To realize ICT oriented learning by establishing the monitoring system to collect and review information needed to manage an organization or on-going activities of the university.",
	"8. To provide industry experience through on-the-job-trainings, exposures, internship, immersion programs and linkages.",
	"9. To provide a holistic curriculum that integrates instruction, extension, research, ICT, industry experience for both students and faculty.",
	"10. To adopt an interdisciplinary approach by enhancing the institution's interest in the understanding of the cultural reproduction and social integration and in spiritual and moral formation",
}

var institutionalOutcomes = []string{
	"Transformative Leaders.  Active involvement in their respective community and organization by championing the Salettinian ideals.",
	"Reconcilers.  Continue to communicate their Salettinian identity and culture through active involvements in the evangelizing ministry of reconciliation in their local communities, work-places and in social organizations.",
	"Industry Competent.  Demonstrate their readiness in the arena of and qualification for employment through the established link between theoretical aspect of the curriculum and its practical dimension as a result of their on-the-job trainings, exposures, internship, immersion programs and linkages with relevant industries or workplaces.",
	"Research-Oriented.  Keep abreast with current developments and trends in all relevant technical/professional knowledge areas for successful adaptation to a changing and complex world through continuing engagement in research projects to contribute to the humanization of the world in general, and to the reconciling effects on their relationships with God, with fellow human beings, with society and with nature.",
	"Information and Communication Technology Proficient. Demonstrate contemporary skills applications as they offer innovative solutions in work situations through the employment of new technology and new ways of communication.",
	"Critical Thinkers.  Engage themselves in critical reflection and communicative discourses on uncritically assimilated assumptions, beliefs, value-system and diverse perspectives that need to be collaboratively addressed for an emancipatory and integral process of human growth and community building.",
	"Holistic Persons.  Demonstrate through their attitude, behavior and engagement a synthesis of faith and lived experience, of faith and science; synthesis of cognitive, affective and behavioral aspects of learning; synthesis of cultural and global concerns, and a synthesis of curricular and co-curricular programs.",
}

// Column initials of institutionalOutcomes in the relationship matrix.
var institutionalOutcomeCodes = []string{"T", "R", "I", "R", "I", "C", "H"}

var programOutcomes = []string{
	"Apply knowledge of computing, science and mathematics appropriate to the discipline",
	"Understand best practices and standards and their applications",
	"Analyze complex problems, and identify and define the computing requirements appropriate to its solution",
	"Identify and analyze user needs and take them into account in the selection, creation, evaluation and administration of computer-based systems",
	"Design, implement and evaluate computer-based systems, processes, components or programs to meet desired needs and requirements under various constraints",
	"Integrate IT-based solutions into the user environment effectively",
	"Apply knowledge through the use of current techniques, skills, tools and practices necessary for the IT profession",
	"Function effectively as a member or leader of a development team recognizing the different roles within a team to accomplish a common goal",
	"Assist in the creation of an effective IT project plan",
	"Communicate effectively with the computing community and with society at large about complex computing activities through logical writing, presentations and clear instructions",
	"Analyze the local and global impact of computing information technology on individuals, organizations and society",
	"Understand professional, ethical, legal, security and social issues and responsibilities in the utilization of information technology.",
	"Recognize the need for and engage in planning self-learning and improving performance as a foundation for continuing professional development",
}

var courseRequirements = []string{
	"1. Examinations (Prelim, Midterm, Finals)",
	"2. Module Activities",
	"3. Quizzes",
	"4. Completed Assessment Tasks",
	"5. Submission of Completed Assignments",
}

var gradingSystem = []string{
	"a. Prelim Period",
	"• Class Standing = 2/3 (Quizzes/ Assignments/ Recitations/ Seat Works/Laboratory exercises/ Requirements)",
	"• Examination = 1/3",
	"• Prelim Grade = CS + PE",
	"b. Midterm Period",
	"• Class Standing = 2/3 (Quizzes/ Assignments/ Recitations/ Seat Works/Laboratory exercises/ Requirements)",
	"• Examination = 1/3",
	"• Midterm Grade = CS + ME",
	"• Cumulative Midterm Grade = 2/3 of Midterm Grade + 1/3 of Prelim Grade",
	"c. Final Period",
	"• Class Standing = 2/3 (Quizzes/ Assignments/ Recitations/ Seat Works/Laboratory exercises/ Requirements)",
	"• Examination = 1/3",
	"• Final Grade = CS + FE",
	"• Cumulative Final Grade = 2/3 of Final Grade + 1/3 of Cumulative Midterm Grade",
}

var rubricHeader = []string{
	"Criteria", "Exemplary\n4", "Acceptable\n3", "Developing\n2", "Beginning\n1", "Not done\n0",
}

var rubricDescriptors = []string{
	"Each criterion will be defined for specific assessment that will assess the respective course learning outcomes",
	"Work is equivalent to expected outcome in the workplace. Work is of exceptional quality and meets or exceeds all expectations.",
	"Work is close to expected quality outcome in the workplace but few errors or mistakes committed. Work demonstrates a clear understanding of the concepts and skills being assessed.",
	"Acceptable work. Many areas are properly done while many need rework. Work shows a basic understanding of the concepts and skills being assessed.",
	"Needs to study to achieve. Need to rework major areas. Work demonstrates a limited understanding of the concepts and skills being assessed.",
	"Not done. There is no evidence of understanding of the concepts and skills being assessed.",
}

var coursePolicies = []string{
	"1. A class hour begins and ends with a prayer. Classroom prayer must be recited with decorum.",
	"2. Respect, orderly and decent behavior and conduct shall be observed inside the classroom at all times.",
	"3. A student may be allowed to leave the room with the permission of the instructor and/or authorized personnel of the university while the class is in session.",
	"4. Students who wish to sit-in class must secure permit from the instructor.",
	"5. Students are not allowed to stay inside the classroom if there are no classes.",
	"6. Students are not allowed to attend classes if not in proper uniform. It must be observed that PE uniform shall be utilized for PE classes only.",
}

var consultationHours = [][]string{
	{"Day", "Time", "Venue"},
	{"Monday", "10:00 AM - 12:00 PM", "Faculty Room"},
	{"Wednesday", "1:00 PM - 3:00 PM", "Faculty Room"},
	{"Friday", "10:00 AM - 12:00 PM", "Faculty Room"},
}

var defaultObjectives = []string{
	"Analyze different user populations with regard to their abilities and characteristics",
	"Evaluate the design of existing user interfaces based on cognitive models",
	"Apply design principles to create effective user interfaces",
	"Conduct usability testing and evaluate results",
	"Implement user-centered design methodologies in software development",
}

var defaultReferences = []string{
	"Introduction to Human-Computer Interaction by Alan Dix, Janet Finlay, Gregory Abowd, and Russell Beale",
	"Don't Make Me Think by Steve Krug",
	"The Design of Everyday Things by Don Norman",
	"Human-Computer Interaction: An Empirical Research Perspective by Scott MacKenzie",
	"Interaction Design: Beyond Human-Computer Interaction by Jenny Preece, Helen Sharp, and Yvonne Rogers",
}
