package canon

// Ordinal prefixes. Each alternative is tried in order by the regexp
// engine, so "First\s+" is attempted before "First\s+Book\s+of".
const (
	first  = `1|I\s+|1st\s+|First\s+|Primero\s+|Primeiro\s+|1\s+`
	second = `2|II|2nd\s+|Second\s+|Segundo\s+|2\s+`
	third  = `3|III|3rd\s+|Third\s+|Tercero\s+|Terceiro\s+|3\s+`

	firstBook  = first + `|First\s+Book\s+of(?:\s+the)?`
	secondBook = second + `|Second\s+Book\s+of(?:\s+the)?`

	epistleOfPaulTo  = `Epistle\s+of\s+Paul\s+(?:the\s+Apostle\s+)?to(?:\s+the)?`
	generalEpistleOf = `(?:General\s+)?Epistle\s+(?:General\s+)?of`

	firstPaulEpistle  = first + `|First\s+` + epistleOfPaulTo
	secondPaulEpistle = second + `|Second\s+` + epistleOfPaulTo

	firstGeneralEpistle  = first + `|First\s+` + generalEpistleOf
	secondGeneralEpistle = second + `|Second\s+` + generalEpistleOf
	thirdGeneralEpistle  = third + `|Third\s+` + generalEpistleOf
)

// forms builds unguarded forms from expressions.
func forms(exprs ...string) []Form {
	out := make([]Form, len(exprs))
	for i, e := range exprs {
		out[i] = Form{Expr: e}
	}
	return out
}

// Shared cores for numbered books.
var (
	samuelForms = forms(`Samuel`, `Sam\.*`, `Sa\.*`, `Sm\.*`)

	kingsForms = forms(`Kings`, `Kgs\.*`, `Kin\.*`, `Ki\.*`, `Reyes`, `Reis`, `Rey\.*`, `Re\.*`, `Rs\.*`)

	chroniclesForms = forms(`Chronicles`, `Chron\.*`, `Chro\.*`, `Chr\.*`, `Crónicas`, `Crônicas`, `Cr[óô]n\.*`, `Cr\.*`)

	corinthiansForms = forms(`Corinthians`, `Corintios`, `Coríntios`, `Cor\.*`, `Co\.*`)

	thessaloniansForms = forms(`Thessalonians`, `Tesalonicenses`, `Tessalonicenses`, `Thess?\.*`, `Ths\.*`, `Th\.*`, `Ts\.*`)

	timothyForms = forms(`Timothy`, `Timoteo`, `Timóteo`, `Tim\.*`, `Ti\.*`, `Tm\.*`)

	peterForms = forms(`Peter`, `Pedro`, `Pet\.*`, `Pe\.*`, `Pt\.*`)

	maccabeesForms = forms(`Maccabees`, `Macabeos`, `Macabeus`, `Macc?\.*`, `Ma\.*`, `M\.*`)

	// "Jo" alone would swallow Joshua, Job, Jonah and Joel.
	johnForms = []Form{
		{Expr: `John`},
		{Expr: `Joh\.*`},
		{Expr: `Jhn\.*`},
		{Expr: `Jo\.*`, NotFollowedBy: `shua|b|nah|el`},
		{Expr: `Jn\.*`},
		{Expr: `Juan`},
		{Expr: `João`},
	}
)

type bookDef struct {
	id            BookID
	title         string
	spec          PatternSpec
	abbreviations []string
}

// bookDefs lists every book in canonical order.
var bookDefs = []bookDef{
	{Genesis, "Genesis", PatternSpec{Forms: forms(`Gen\.*(?:esis)?`, `Gén\.*(?:esis)?`, `Gên\.*(?:esis)?`, `Gn\.*`)},
		[]string{"Gen", "Gn"}},
	{Exodus, "Exodus", PatternSpec{Forms: forms(`Exo\.*(?:d\.*)?(?:us)?`, `Éxo\.*(?:do)?`, `Êxo\.*(?:do)?`, `Éx`, `Êx`, `Ex\.*`)},
		[]string{"Exo", "Exod", "Éx", "Êx", "Ex"}},
	{Leviticus, "Leviticus", PatternSpec{Forms: forms(`Lev\.*(?:iticus)?`, `Lev\.*(?:ítico)?`, `Lv\.*`)},
		[]string{"Lev", "Lv"}},
	{Numbers, "Numbers", PatternSpec{Forms: forms(`Num\.*(?:bers)?`, `Num\.*(?:eros)?`, `Núm\.*(?:eros)?`, `Nm\.*`)},
		[]string{"Num", "Núm", "Nm"}},
	{Deuteronomy, "Deuteronomy", PatternSpec{Forms: forms(`Deu\.*(?:t\.*)?(?:eronomy)?`, `Deu\.*(?:teronomio)?`, `Dt\.*`)},
		[]string{"Deu", "Deut", "Dt"}},
	{Joshua, "Joshua", PatternSpec{Forms: forms(`Joshua`, `Josh\.*`, `Josué`, `Jos\.*`, `Jsh\.*`, `Js\.*`)},
		[]string{"Jos", "Jsh", "Josh", "Js"}},
	{Judges, "Judges", PatternSpec{Forms: forms(`Judges`, `Judg\.*`, `Jdgs\.*`, `Jdg\.*`, `Jueces`, `Jue\.*`, `Jz\.*`)},
		[]string{"Jdg", "Jdgs", "Judg", "Jue", "Jz"}},
	{Ruth, "Ruth", PatternSpec{Forms: forms(`Ruth`, `Rut\.*`, `Rth\.*`, `Rt\.*`)},
		[]string{"Rth", "Rut", "Rt"}},
	{FirstSamuel, "1 Samuel", PatternSpec{
		Forms:  samuelForms,
		Prefix: firstBook,
		Suffix: `Otherwise\s+Called\s+The\s+First\s+Book\s+of\s+the\s+Kings`,
	}, []string{"Sa", "Sam", "Sm", "1Sm"}},
	{SecondSamuel, "2 Samuel", PatternSpec{
		Forms:  samuelForms,
		Prefix: secondBook,
		Suffix: `Otherwise\s+Called\s+The\s+Second\s+Book\s+of\s+the\s+Kings`,
	}, []string{"Sa", "Sam", "Sm", "2Sm"}},
	{FirstKings, "1 Kings", PatternSpec{
		Forms:  kingsForms,
		Prefix: firstBook,
		Suffix: `,\s+Commonly\s+Called\s+the\s+Third\s+Book\s+of\s+the\s+Kings`,
	}, []string{"Re", "Rey", "Reis", "Reyes", "Kgs", "Kin", "Ki", "1Rs"}},
	{SecondKings, "2 Kings", PatternSpec{
		Forms:  kingsForms,
		Prefix: secondBook,
		Suffix: `,\s+Commonly\s+Called\s+the\s+Fourth\s+Book\s+of\s+the\s+Kings`,
	}, []string{"Re", "Rey", "Reis", "Reyes", "Kgs", "Kin", "Ki", "2Rs"}},
	{FirstChronicles, "1 Chronicles", PatternSpec{Forms: chroniclesForms, Prefix: firstBook},
		[]string{"Cr", "Crón", "Crôn", "Chron", "Chro", "Chr", "1Cr"}},
	{SecondChronicles, "2 Chronicles", PatternSpec{Forms: chroniclesForms, Prefix: secondBook},
		[]string{"Cr", "Crón", "Crôn", "Chron", "Chro", "Chr", "2Cr"}},
	{Ezra, "Ezra", PatternSpec{Forms: forms(`Ezr\.*(?:a)?`, `Esdras`, `Esd\.*`, `Ed\.*`)},
		[]string{"Ezr", "Esd", "Ed"}},
	{Nehemiah, "Nehemiah", PatternSpec{Forms: forms(`Neh\.*(?:emiah)?`, `Neemias`, `Ne\.*`)},
		[]string{"Neh", "Ne"}},
	{Esther, "Esther", PatternSpec{Forms: forms(`Est\.*(?:h\.*)?(?:er)?`, `Ester`, `Et\.*`)},
		[]string{"Est", "Esth", "Et"}},
	{Job, "Job", PatternSpec{Forms: forms(`Job`, `Jb\.*`, `Jó\.*`)},
		[]string{"Job", "Jb", "Jó"}},
	{Psalms, "Psalms", PatternSpec{Forms: forms(`Psalms`, `Psalm`, `Pslm\.*`, `Psa\.*`, `Psm\.*`, `Pss\.*`, `Ps\.*`, `Salmos`, `Sal\.*`, `Sl\.*`)},
		[]string{"Ps", "Psa", "Pslm", "Psm", "Pss", "Sal", "Sl"}},
	{Proverbs, "Proverbs", PatternSpec{Forms: forms(`Proverbs`, `Proverbios`, `Provérbios`, `Prov\.*`, `Pro\.*`, `Prv\.*`, `Pv\.*`)},
		[]string{"Pro", "Prov", "Prv", "Pv"}},
	// The shorter Ecclesiastes abbreviations are prefixes of Ecclesiasticus.
	{Ecclesiastes, "Ecclesiastes", PatternSpec{Forms: []Form{
		{Expr: `Ecclesiastes(?:\s+or,\s+the\s+Preacher)?`},
		{Expr: `Eclesiastés`},
		{Expr: `Eclesiastes`},
		{Expr: `Eccles\.*`, NotFollowedBy: `iasticus?`},
		{Expr: `Ecles\.*`},
		{Expr: `Eccle\.*`, NotFollowedBy: `siasticus?`},
		{Expr: `Ecle\.*`},
		{Expr: `Eccl\.*`, NotFollowedBy: `esiasticus?|us?`},
		{Expr: `Ecl\.*`},
		{Expr: `Ecc\.*`, NotFollowedBy: `lesiasticus?|lus?`},
		{Expr: `Ec\.*`},
		{Expr: `Qoh\.*`},
	}}, []string{"Ec", "Ecc", "Eccl", "Eccle", "Eccles", "Ecl", "Ecle", "Ecles", "Qoh"}},
	{SongOfSongs, "Song of Songs", PatternSpec{Forms: forms(
		`Song(?:\s+of\s+(?:Solomon|Songs|Sol\.*))?`,
		`Cantar\s+de\s+los\s+Cantares`,
		`Cânticos`,
		`Cantares`,
		`Canticles`,
		`Canticle(?:\s+of\s+Canticles)?`,
		`Cant`,
		`SOS`,
		`Ct\.*`,
	)}, []string{"Cant", "Canticle", "Canticles", "Song", "Song of Sol", "SOS", "Ct"}},
	{Isaiah, "Isaiah", PatternSpec{Forms: forms(`Isa[ií]as`, `Isa\.*(?:iah)?`, `Is\.*`)},
		[]string{"Isa", "Is"}},
	{Jeremiah, "Jeremiah", PatternSpec{Forms: forms(`Jerem[ií]as`, `Jer\.*(?:emiah)?`, `Je\.*`, `Jr\.*`)},
		[]string{"Jer", "Je", "Jr"}},
	{Lamentations, "Lamentations", PatternSpec{
		Forms:  forms(`Lamentaciones`, `Lamentações`, `Lam\.*(?:entations)?`, `Lm\.*`, `Lá\.*`),
		Suffix: `of\s+Jeremiah`,
	}, []string{"Lam", "Lm", "Lá"}},
	{Ezekiel, "Ezekiel", PatternSpec{Forms: forms(`Ezekiel`, `Ezequiel`, `Eze\.*`, `Ezq\.*`, `Ezk\.*`, `Ez\.*`)},
		[]string{"Eze", "Ezq", "Ezk", "Ez"}},
	{Daniel, "Daniel", PatternSpec{Forms: forms(`Dan\.*(?:iel)?`, `Dn\.*`)},
		[]string{"Dan", "Dn"}},
	{Hosea, "Hosea", PatternSpec{Forms: forms(`Hos\.*(?:ea)?`, `Oseas`, `Os\.*`, `O\.*`)},
		[]string{"Hos", "Os", "O"}},
	{Joel, "Joel", PatternSpec{Forms: forms(`Joel`, `Joe\.*`, `Jl\.*`)},
		[]string{"Joe", "Jl"}},
	{Amos, "Amos", PatternSpec{Forms: forms(`Amós`, `Amo\.*(?:s)?`, `Am\.*`)},
		[]string{"Amo", "Am"}},
	{Obadiah, "Obadiah", PatternSpec{Forms: forms(`Oba\.*(?:d\.*(?:iah)?)?`, `Abdías`, `Obd\.*`, `Abd\.*`, `Ob\.*`, `Ab\.*`)},
		[]string{"Oba", "Obd", "Abd", "Ob", "Ab"}},
	{Jonah, "Jonah", PatternSpec{Forms: forms(`Jonah`, `Jonás`, `Jon\.*`, `Jnh\.*`, `Jn\.*`)},
		[]string{"Jnh", "Jon", "Jn"}},
	{Micah, "Micah", PatternSpec{Forms: forms(`Mic\.*(?:ah)?`, `Miqueas`, `Mi\.*`, `Mq\.*`)},
		[]string{"Mic", "Mi", "Mq"}},
	{Nahum, "Nahum", PatternSpec{
		Forms:         forms(`Nahúm`, `Nah\.*(?:um)?`, `Na\.*`),
		NotPrecededBy: `Jo`,
	}, []string{"Nah", "Na"}},
	{Habakkuk, "Habakkuk", PatternSpec{Forms: forms(`Habacuc`, `Hab\.*(?:akkuk)?`, `Hb\.*`, `Hc\.*`)},
		[]string{"Hab", "Hb", "Hc"}},
	{Zephaniah, "Zephaniah", PatternSpec{Forms: forms(`Zep\.*(?:h\.*(?:aniah)?)?`, `Sofonías`, `Zefanias`, `Sof\.*`, `Zef\.*`, `Sf\.*`, `Zp\.*`)},
		[]string{"Zep", "Sof", "Zef", "Sf", "Zp"}},
	{Haggai, "Haggai", PatternSpec{Forms: forms(`Hag\.*(?:gai)?`, `Ageo`, `Ag\.*`, `Hg\.*`)},
		[]string{"Hag", "Ag", "Hg"}},
	{Zechariah, "Zechariah", PatternSpec{Forms: forms(`Zec\.*(?:h\.*(?:ariah)?)?`, `Zacar[ií]as`, `Zac\.*`, `Zc\.*`)},
		[]string{"Zec", "Zac", "Zc"}},
	{Malachi, "Malachi", PatternSpec{Forms: forms(`Malaqu[ií]as`, `Mal\.*(?:achi)?`, `Ml\.*`)},
		[]string{"Mal", "Ml"}},
	{Matthew, "Matthew", PatternSpec{Forms: forms(`Mateo`, `Mat\.*(?:t\.*(?:hew)?)?`, `Mt\.*`)},
		[]string{"Mat", "Matt", "Mt"}},
	{Mark, "Mark", PatternSpec{Forms: forms(`Mark`, `Marcos`, `Mar\.*`, `Mrk\.*`, `Mr\.*`, `Mc\.*`)},
		[]string{"Mar", "Mrk", "Mr", "Mc"}},
	{Luke, "Luke", PatternSpec{Forms: forms(`Lucas`, `Luk\.*(?:e)?`, `Luc\.*`, `Lc\.*`)},
		[]string{"Luk", "Luc", "Lc"}},
	// "1 John" and "I John" belong to the epistles. The numeral must stand
	// alone so that "Hi John" and "Levi John" still name the gospel.
	{John, "John", PatternSpec{
		Forms:         johnForms,
		NotPrecededBy: `(?:^|[^\pL\pN])(?:1|2|3|I{1,3})\s?`,
	}, []string{"Jhn", "Jn", "Jo", "Joh"}},
	{Acts, "Acts", PatternSpec{
		Forms:  forms(`Act\.*(?:s)?`, `Hechos`, `Atos`, `He\.*`, `At\.*`),
		Suffix: `of\s+the\s+Apostles`,
	}, []string{"Act", "He", "At"}},
	{Romans, "Romans", PatternSpec{Forms: forms(`Romanos`, `Rom\.*(?:ans)?`, `Rm\.*`)},
		[]string{"Rom", "Rm"}},
	{FirstCorinthians, "1 Corinthians", PatternSpec{Forms: corinthiansForms, Prefix: firstPaulEpistle},
		[]string{"Co", "Cor", "1Co"}},
	{SecondCorinthians, "2 Corinthians", PatternSpec{Forms: corinthiansForms, Prefix: secondPaulEpistle},
		[]string{"Co", "Cor", "2Co"}},
	{Galatians, "Galatians", PatternSpec{Forms: forms(`Gal\.*(?:atians)?`, `Gálatas`, `Gl\.*`)},
		[]string{"Gal", "Gl"}},
	{Ephesians, "Ephesians", PatternSpec{
		Forms:         forms(`Eph\.*(?:es\.*(?:ians)?)?`, `Efesios`, `Efésios`, `Efe\.*`, `Ef\.*`),
		NotPrecededBy: `Z`,
	}, []string{"Eph", "Ephes", "Efe", "Ef"}},
	// "Phil" must leave "Philemon" alone.
	{Philippians, "Philippians", PatternSpec{Forms: []Form{
		{Expr: `Philippians`},
		{Expr: `Php\.*`},
		{Expr: `Phil\.*`, NotFollowedBy: `e`},
		{Expr: `Filipenses`},
		{Expr: `Flp\.*`},
		{Expr: `Fp\.*`},
	}}, []string{"Php", "Phil", "Flp", "Fp"}},
	{Colossians, "Colossians", PatternSpec{Forms: forms(`Colosenses`, `Colossenses`, `Col\.*(?:ossians)?`, `Cl\.*`)},
		[]string{"Col", "Cl"}},
	{FirstThessalonians, "1 Thessalonians", PatternSpec{Forms: thessaloniansForms, Prefix: firstPaulEpistle},
		[]string{"Th", "Thes", "Thess", "Ths", "1Ts"}},
	{SecondThessalonians, "2 Thessalonians", PatternSpec{Forms: thessaloniansForms, Prefix: secondPaulEpistle},
		[]string{"Th", "Thes", "Thess", "Ths", "2Ts"}},
	{FirstTimothy, "1 Timothy", PatternSpec{Forms: timothyForms, Prefix: firstPaulEpistle},
		[]string{"Ti", "Tim", "1Tm"}},
	{SecondTimothy, "2 Timothy", PatternSpec{Forms: timothyForms, Prefix: secondPaulEpistle},
		[]string{"Ti", "Tim", "2Tm"}},
	{Titus, "Titus", PatternSpec{Forms: forms(`Tito`, `Tit\.*(?:us)?`, `Tt\.*`)},
		[]string{"Tit", "Tt"}},
	{Philemon, "Philemon", PatternSpec{Forms: []Form{
		{Expr: `Philemon`},
		{Expr: `Philem\.*`},
		{Expr: `Phile\.*`},
		{Expr: `Phlm\.*`},
		{Expr: `Phi\.*`, NotFollowedBy: `l`},
		{Expr: `Phm\.*`},
		{Expr: `Filemón`},
		{Expr: `Filemon`},
		{Expr: `Flm\.*`},
		{Expr: `Fm\.*`},
	}}, []string{"Phi", "Phile", "Philem", "Phlm", "Phm", "Flm", "Fm"}},
	{Hebrews, "Hebrews", PatternSpec{Forms: forms(`Hebreos`, `Hebreus`, `Heb\.*(?:rews)?`, `Hb\.*`)},
		[]string{"Heb", "Hb"}},
	{James, "James", PatternSpec{Forms: forms(`Ja(?:me)?s\.*`, `Santiago`, `Tiago`, `San\.*`, `Stg\.*`, `Tg\.*`)},
		[]string{"Jas", "San", "Stg", "Tg"}},
	{FirstPeter, "1 Peter", PatternSpec{Forms: peterForms, Prefix: firstGeneralEpistle},
		[]string{"Pe", "Pet", "Pt", "1Pe"}},
	{SecondPeter, "2 Peter", PatternSpec{Forms: peterForms, Prefix: secondGeneralEpistle},
		[]string{"Pe", "Pet", "Pt", "2Pe"}},
	{FirstJohn, "1 John", PatternSpec{Forms: johnForms, Prefix: firstGeneralEpistle},
		[]string{"Jhn", "Jn", "Jo", "Joh", "1Jo"}},
	{SecondJohn, "2 John", PatternSpec{Forms: johnForms, Prefix: secondGeneralEpistle},
		[]string{"Jhn", "Jn", "Jo", "Joh", "2Jo"}},
	{ThirdJohn, "3 John", PatternSpec{Forms: johnForms, Prefix: thirdGeneralEpistle},
		[]string{"Jhn", "Jn", "Jo", "Joh", "3Jo"}},
	// "Jud" must leave "Judges" alone.
	{Jude, "Jude", PatternSpec{Forms: []Form{
		{Expr: `Jude`},
		{Expr: `Judas`},
		{Expr: `Jud\.*`, NotFollowedBy: `ges`},
		{Expr: `Jd\.*`},
	}}, []string{"Jud", "Jd"}},
	{Revelation, "Revelation", PatternSpec{
		Forms:  forms(`Rev\.*(?:elation)?`, `Apocalipsis`, `Apocalipse`, `Ap\.*`),
		Suffix: `of\s+(?:Jesus\s+Christ|John|St\.\s+John\s+the\s+Divine)`,
	}, []string{"Rev", "Ap"}},
	{FirstEsdras, "1 Esdras", PatternSpec{Forms: forms(`Esdras`, `Esdr\.*`, `Esd\.*`, `Es\.*`), Prefix: first},
		[]string{"Es", "Esd", "Esdr"}},
	{Tobit, "Tobit", PatternSpec{Forms: forms(`Tobit`, `Tob[ií]as`, `Tob\.*`, `Tb\.*`)},
		[]string{"Tb", "Tob"}},
	{WisdomOfSolomon, "Wisdom of Solomon", PatternSpec{Forms: []Form{
		{Expr: `Wisdom\s+of\s+Solomon`},
		{Expr: `Wisdom`},
		{Expr: `Sabiduría`},
		{Expr: `Sabedoria`},
		{Expr: `Wisd\.*\s+of\s+Sol\.*`},
		{Expr: `Wis\.*`},
		{Expr: `Ws\.*`, NotPrecededBy: `Hebre`},
	}}, []string{"Wis", "Wisd of Sol", "Ws", "Sab", "Sb"}},
	{Ecclesiasticus, "Ecclesiasticus", PatternSpec{Forms: forms(`Sirach`, `Sir\.*`, `Eclesiástico`, `Ecclesiasticus`, `Ecclus\.*`)},
		[]string{"Ecclus", "Sir", "Eclo", "Ecl"}},
	{FirstMaccabees, "1 Maccabees", PatternSpec{Forms: maccabeesForms, Prefix: first},
		[]string{"M", "Ma", "Mac", "Macc"}},
	{SecondMaccabees, "2 Maccabees", PatternSpec{Forms: maccabeesForms, Prefix: second},
		[]string{"M", "Ma", "Mac", "Macc"}},
}
