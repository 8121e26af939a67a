package outline

// Prompts are Japanese because the lectures are; the surrounding
// tooling stays in English.

const outlinePromptTemplate = `以下のテキストを元に、講義スライドのアウトラインを作成してください。

出力形式は以下のような人間が読みやすいテキスト形式でお願いします：

` + "```" + `
タイトル: [講義全体のタイトル]

アジェンダ:
1. [アジェンダ1のタイトル]
2. [アジェンダ2のタイトル]
3. [アジェンダ3のタイトル]
...

---

## 1. [アジェンダ1のタイトル]

### スライド1
- 箇条書き項目1
- 箇条書き項目2
  - サブ項目
- 箇条書き項目3

### スライド2
- 箇条書き項目1
- 箇条書き項目2

---

## 2. [アジェンダ2のタイトル]

### スライド1
- 箇条書き項目1
- 箇条書き項目2

...
` + "```" + `

%s

入力テキスト:
%s

上記の形式でアウトラインを作成してください。説明は不要で、アウトラインのみを出力してください。`

const detailInstructionStandard = `
要件（標準版）:
- アジェンダは3-5個程度
- 各アジェンダには1-3枚程度のスライドを作成
- 各スライドの内容は「•」または「-」を使った箇条書き
- 各スライドは300文字程度に収める
- 人間が修正しやすいように、わかりやすく構造化
`

const detailInstructionDetailed = `
要件（詳細版）:
- アジェンダは4-7個程度（標準版より多め）
- 各アジェンダには2-5枚程度のスライドを作成（標準版より多め）
- 各スライドの内容はより詳しく、具体例や補足説明も含める
- サブ項目も積極的に使用して情報を構造化
- 各スライドは400-500文字程度でも可
- 実践的な例やケーススタディも含める
`

const convertPromptTemplate = `以下のアウトラインテキストを、指定されたJSON形式に変換してください。
人間が手動で修正している可能性があるため、多少フォーマットがズレていても柔軟に解釈してください。

出力するJSON形式:
{
  "title": "講義のタイトル",
  "agenda": ["アジェンダ1", "アジェンダ2", "アジェンダ3", ...],
  "main": {
    "アジェンダ1": ["スライド1の内容\n箇条書き", "スライド2の内容\n箇条書き", ...],
    "アジェンダ2": ["スライド1の内容\n箇条書き", ...],
    ...
  }
}

注意事項:
- 各スライドの内容は改行を含む1つの文字列として格納
- 箇条書きは「•」または「-」で始まる
- JSONのみを出力し、それ以外の説明やマークダウンは不要

アウトラインテキスト:
%s

上記をJSON形式に変換してください。JSONのみを出力してください。`
